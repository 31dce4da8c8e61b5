//go:build linux

package limits

import (
	"fmt"
	"os"
	"testing"
)

// Runs only as root on Linux, where cgroup placement is actually available.
func TestNewPipelineAttachesCgroup(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("skipping: not running as root")
	}

	pl, err := NewPipeline()
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	lp, ok := pl.(*linuxPipeline)
	if !ok || lp.dir == "" {
		t.Fatalf("expected a cgroup directory to be created")
	}

	attr, closer, err := pl.Attrs()
	if err != nil {
		t.Fatalf("Attrs: %v", err)
	}
	if !attr.UseCgroupFD {
		t.Fatalf("expected UseCgroupFD set")
	}
	if closer == nil {
		t.Fatalf("expected a Closer for the cgroup fd")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close cgroup fd: %v", err)
	}

	procsPath := fmt.Sprintf("%s/cgroup.procs", lp.dir)
	if _, err := os.Stat(procsPath); err != nil {
		t.Fatalf("expected cgroup.procs to exist: %v", err)
	}

	if err := pl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(lp.dir); !os.IsNotExist(err) {
		t.Fatalf("expected cgroup directory removed after Close")
	}
}
