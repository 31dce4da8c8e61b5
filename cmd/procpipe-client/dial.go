package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const defaultAddress = "localhost:50151"

// dial connects to the pipeline server named by PROCPIPE_ADDRESS. mTLS is
// the default transport, reading the same PROCPIPE_TLS_KEY/PROCPIPE_TLS_CERT/
// PROCPIPE_CA_TLS_CERT triple the server reads. Setting PROCPIPE_INSECURE=1
// switches to plaintext, for driving a pipeline server started without
// certificates during local development against a single trusted host.
func dial(ctx context.Context) (*grpc.ClientConn, error) {
	addr := os.Getenv("PROCPIPE_ADDRESS")
	if strings.TrimSpace(addr) == "" {
		addr = defaultAddress
	}

	if verbose() {
		fmt.Fprintf(os.Stderr, "procpipe: dialing pipeline server at %s\n", addr)
	}

	if strings.TrimSpace(os.Getenv("PROCPIPE_INSECURE")) == "1" {
		return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	keyPEM := os.Getenv("PROCPIPE_TLS_KEY")
	certPEM := os.Getenv("PROCPIPE_TLS_CERT")
	caPEM := os.Getenv("PROCPIPE_CA_TLS_CERT")
	if strings.TrimSpace(keyPEM) == "" || strings.TrimSpace(certPEM) == "" || strings.TrimSpace(caPEM) == "" {
		return nil, fmt.Errorf("missing TLS environment variables; require PROCPIPE_TLS_KEY, PROCPIPE_TLS_CERT, PROCPIPE_CA_TLS_CERT (or set PROCPIPE_INSECURE=1 for a plaintext dev connection)")
	}

	cert, err := tls.X509KeyPair([]byte(certPEM), []byte(keyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse TLS cert/key from env: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM([]byte(caPEM)) {
		return nil, fmt.Errorf("failed to parse CA cert from env")
	}

	cfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS13,
	}
	creds := credentials.NewTLS(cfg)

	return grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
}

func verbose() bool {
	return strings.TrimSpace(os.Getenv("PROCPIPE_VERBOSE")) == "1"
}

func grpcCode(err error) codes.Code {
	st, ok := status.FromError(err)
	if !ok {
		return codes.Unknown
	}
	return st.Code()
}
