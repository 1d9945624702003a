package wizard

import (
	"context"
	"os"

	"github.com/he2plus/he2plus-lib-sub001/internal/config"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
	"github.com/he2plus/he2plus-lib-sub001/internal/resolver"
	"github.com/he2plus/he2plus-lib-sub001/internal/system"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	Capacity       model.Capacity
	ProbeErr       error    // partial probe failure; Capacity still holds what was measured
	Recommended    []string // profile ids that fit Capacity, in priority order
	ExistingConfig string   // path of a he2plus.yml that would be overwritten
	ProfileDirs    []string // configured profile directories that exist
}

// Detector abstracts host and filesystem lookups for testing.
type Detector interface {
	system.Prober
	Stat(path string) (os.FileInfo, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct {
	system.OSProber
}

func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

// Detect measures the host, applies configured capacity overrides and
// collects the profiles that fit.
func Detect(ctx context.Context, d Detector, cfg *config.Config, r *resolver.Resolver) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	capacity, err := system.Probe(ctx, d)
	result.Capacity = cfg.ApplyCapacity(capacity)
	if err != nil && !cfg.CapacityComplete() {
		result.ProbeErr = err
	}

	for _, p := range r.Recommendations(result.Capacity) {
		result.Recommended = append(result.Recommended, p.ID)
	}

	if _, err := d.Stat(ConfigFileName); err == nil {
		result.ExistingConfig = ConfigFileName
	}

	for _, dir := range cfg.ProfileDirs {
		if info, err := d.Stat(dir); err == nil && info.IsDir() {
			result.ProfileDirs = append(result.ProfileDirs, dir)
		}
	}

	return result
}
