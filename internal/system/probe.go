// Package system measures the capacity of the host machine.
package system

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

const bytesPerGB = 1024 * 1024 * 1024

// ErrUnsupported is returned by probes the platform cannot answer.
var ErrUnsupported = errors.New("not supported on this platform")

// Prober abstracts host lookups for testing.
type Prober interface {
	ReadFile(path string) ([]byte, error)
	Command(ctx context.Context, name string, args ...string) ([]byte, error)
	DiskFree(path string) (uint64, error)
	HomeDir() (string, error)
	NumCPU() int
}

// OSProber reads the real host.
type OSProber struct{}

func (OSProber) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
func (OSProber) HomeDir() (string, error)             { return os.UserHomeDir() }
func (OSProber) NumCPU() int                          { return runtime.NumCPU() }
func (OSProber) DiskFree(path string) (uint64, error) { return diskFree(path) }

func (OSProber) Command(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Probe measures total RAM, free disk in the home directory and CPU
// cores. Fields that cannot be measured are left at zero and reported
// in the joined error; the capacity is returned either way.
func Probe(ctx context.Context, p Prober) (model.Capacity, error) {
	if p == nil {
		p = OSProber{}
	}

	var capacity model.Capacity
	var errs []error

	ram, err := totalRAM(ctx, p)
	if err != nil {
		errs = append(errs, fmt.Errorf("probing memory: %w", err))
	}
	capacity.RAMTotalGB = ram

	disk, err := freeDisk(p)
	if err != nil {
		errs = append(errs, fmt.Errorf("probing disk: %w", err))
	}
	capacity.DiskFreeGB = disk

	capacity.CPUCores = p.NumCPU()

	return capacity, errors.Join(errs...)
}

func totalRAM(ctx context.Context, p Prober) (float64, error) {
	if data, err := p.ReadFile("/proc/meminfo"); err == nil {
		if kb, ok := parseMemTotal(data); ok {
			return round1(float64(kb) * 1024 / bytesPerGB), nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	out, err := p.Command(ctx, "sysctl", "-n", "hw.memsize")
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing hw.memsize: %w", err)
	}
	return round1(float64(n) / bytesPerGB), nil
}

// parseMemTotal extracts MemTotal (in kB) from /proc/meminfo.
func parseMemTotal(data []byte) (uint64, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] != "MemTotal:" {
			continue
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		return kb, err == nil
	}
	return 0, false
}

func freeDisk(p Prober) (float64, error) {
	home, err := p.HomeDir()
	if err != nil {
		return 0, err
	}
	free, err := p.DiskFree(home)
	if err != nil {
		return 0, err
	}
	return round1(float64(free) / bytesPerGB), nil
}

func round1(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}
