//go:build linux

package limits

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/google/uuid"
)

const cgroupRoot = "/sys/fs/cgroup/procgroup"

var (
	initOnce sync.Once
	initErr  error
)

type linuxPipeline struct {
	dir string // "" when running unprivileged: falls back to process-group only
}

// NewPipeline creates (best-effort, root-only) a cgroup for one pipeline
// run. When not running as root, cgroup isolation is unavailable and the
// returned Pipeline falls back to a plain process group, matching the
// teacher's own non-root fallback in GetSysProcAttr.
func NewPipeline() (Pipeline, error) {
	if os.Geteuid() != 0 {
		return &linuxPipeline{}, nil
	}
	initOnce.Do(func() { initErr = initCgroupRoot() })
	if initErr != nil {
		return &linuxPipeline{}, nil
	}

	dir := filepath.Join(cgroupRoot, uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &linuxPipeline{}, nil
	}
	return &linuxPipeline{dir: dir}, nil
}

// Attrs opens a fresh handle onto the cgroup directory and returns it
// alongside the SysProcAttr so the caller can keep it alive across
// cmd.Start() and close it only afterward. Returning the *os.File directly
// as an unreferenced local would let the GC finalize (and close) it before
// the fork that consumes CgroupFD actually happens.
func (p *linuxPipeline) Attrs() (*syscall.SysProcAttr, io.Closer, error) {
	attr := &syscall.SysProcAttr{Setpgid: true}
	if p.dir == "" {
		return attr, nil, nil
	}
	f, err := os.Open(p.dir)
	if err != nil {
		return attr, nil, nil
	}
	attr.UseCgroupFD = true
	attr.CgroupFD = int(f.Fd())
	return attr, f, nil
}

func (p *linuxPipeline) Kill() error {
	if p.dir == "" {
		return nil
	}
	return os.WriteFile(filepath.Join(p.dir, "cgroup.kill"), []byte("1"), 0o644)
}

func (p *linuxPipeline) Close() error {
	if p.dir == "" {
		return nil
	}
	return os.Remove(p.dir)
}

func initCgroupRoot() error {
	if err := os.MkdirAll(cgroupRoot, 0o755); err != nil {
		return err
	}
	available, err := readControllerSet(filepath.Join(cgroupRoot, "cgroup.controllers"))
	if err != nil {
		return err
	}
	enabled, err := readControllerSet(filepath.Join(cgroupRoot, "cgroup.subtree_control"))
	if err != nil {
		return err
	}
	var toAdd []string
	for _, ctrl := range []string{"cpu", "io", "memory"} {
		if available[ctrl] && !enabled[ctrl] {
			toAdd = append(toAdd, "+"+ctrl)
		}
	}
	if len(toAdd) == 0 {
		return nil
	}
	return os.WriteFile(filepath.Join(cgroupRoot, "cgroup.subtree_control"), []byte(strings.Join(toAdd, " ")), 0o644)
}

func readControllerSet(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool)
	for _, f := range strings.Fields(string(data)) {
		set[strings.TrimPrefix(f, "+")] = true
	}
	return set, nil
}
