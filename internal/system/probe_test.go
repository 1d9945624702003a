package system

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/he2plus/he2plus-lib-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProber implements Prober for testing.
type mockProber struct {
	files    map[string]string
	commands map[string]string
	free     uint64
	freeErr  error
	home     string
	cpus     int
	calls    []string
}

func (m *mockProber) ReadFile(path string) ([]byte, error) {
	if content, ok := m.files[path]; ok {
		return []byte(content), nil
	}
	return nil, os.ErrNotExist
}

func (m *mockProber) Command(_ context.Context, name string, args ...string) ([]byte, error) {
	key := name
	for _, a := range args {
		key += " " + a
	}
	m.calls = append(m.calls, key)
	if out, ok := m.commands[key]; ok {
		return []byte(out), nil
	}
	return nil, errors.New("command not found")
}

func (m *mockProber) DiskFree(path string) (uint64, error) {
	if path != m.home {
		return 0, errors.New("unexpected path " + path)
	}
	return m.free, m.freeErr
}

func (m *mockProber) HomeDir() (string, error) {
	if m.home == "" {
		return "", errors.New("no home")
	}
	return m.home, nil
}

func (m *mockProber) NumCPU() int { return m.cpus }

const meminfo = `MemTotal:       16303428 kB
MemFree:         1203456 kB
MemAvailable:    9876543 kB
`

func TestProbeLinux(t *testing.T) {
	p := &mockProber{
		files: map[string]string{"/proc/meminfo": meminfo},
		free:  120 * bytesPerGB,
		home:  "/home/dev",
		cpus:  8,
	}

	capacity, err := Probe(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, model.Capacity{RAMTotalGB: 15.5, DiskFreeGB: 120, CPUCores: 8}, capacity)
	assert.Empty(t, p.calls, "sysctl should not run when /proc/meminfo is readable")
}

func TestProbeSysctlFallback(t *testing.T) {
	p := &mockProber{
		commands: map[string]string{"sysctl -n hw.memsize": "34359738368\n"},
		free:     50 * bytesPerGB,
		home:     "/Users/dev",
		cpus:     10,
	}

	capacity, err := Probe(context.Background(), p)
	require.NoError(t, err)
	assert.InDelta(t, 32.0, capacity.RAMTotalGB, 0.001)
	assert.InDelta(t, 50.0, capacity.DiskFreeGB, 0.001)
	assert.Equal(t, 10, capacity.CPUCores)
}

func TestProbePartialFailure(t *testing.T) {
	p := &mockProber{
		files:   map[string]string{"/proc/meminfo": meminfo},
		freeErr: ErrUnsupported,
		home:    "/home/dev",
		cpus:    4,
	}

	capacity, err := Probe(context.Background(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "probing disk")
	assert.InDelta(t, 15.5, capacity.RAMTotalGB, 0.001)
	assert.Zero(t, capacity.DiskFreeGB)
	assert.Equal(t, 4, capacity.CPUCores)
}

func TestProbeNoMemorySource(t *testing.T) {
	p := &mockProber{
		files: map[string]string{"/proc/meminfo": "SwapTotal: 0 kB\n"},
		home:  "/home/dev",
		free:  bytesPerGB,
		cpus:  2,
	}

	capacity, err := Probe(context.Background(), p)
	assert.ErrorContains(t, err, "probing memory")
	assert.Zero(t, capacity.RAMTotalGB)
	assert.Equal(t, []string{"sysctl -n hw.memsize"}, p.calls)
}

func TestParseMemTotal(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   uint64
		wantOK bool
	}{
		{"standard", meminfo, 16303428, true},
		{"missing", "MemFree: 12 kB\n", 0, false},
		{"garbage value", "MemTotal: lots kB\n", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseMemTotal([]byte(tt.input))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
