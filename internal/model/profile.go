package model

import (
	"fmt"
	"regexp"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Requirements describes the host resources a profile needs.
type Requirements struct {
	RAMGB    float64 `yaml:"ram_gb" json:"ram_gb"`
	DiskGB   float64 `yaml:"disk_gb" json:"disk_gb"`
	CPUCores int     `yaml:"cpu_cores" json:"cpu_cores"`
}

// CompatibilityFunc is an optional, profile-specific check against another profile.
type CompatibilityFunc func(self, other *Profile) bool

// Profile is a named bundle of components that together provide a
// development-environment capability. Profiles are built once while the
// catalog loads and are read-only afterwards.
type Profile struct {
	ID                string             `yaml:"id" json:"id"`
	Name              string             `yaml:"name" json:"name"`
	Description       string             `yaml:"description" json:"description"`
	Category          string             `yaml:"category" json:"category"`
	Requirements      Requirements       `yaml:"requirements" json:"requirements"`
	Components        []Component        `yaml:"components" json:"components"`
	VerificationSteps []VerificationStep `yaml:"verification_steps" json:"verification_steps"`
	Dependencies      []string           `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Conflicts         []string           `yaml:"conflicts,omitempty" json:"conflicts,omitempty"`

	// Compatible is consulted in both directions by IsCompatibleWith.
	Compatible CompatibilityFunc `yaml:"-" json:"-"`
}

// ConflictsWith reports whether p declares a conflict with id.
func (p *Profile) ConflictsWith(id string) bool {
	return contains(p.Conflicts, id)
}

// IsCompatibleWith reports whether p and other can be installed together.
// The result does not depend on the call order.
func (p *Profile) IsCompatibleWith(other *Profile) bool {
	if other == nil || p.ID == other.ID {
		return true
	}
	if p.ConflictsWith(other.ID) || other.ConflictsWith(p.ID) {
		return false
	}
	if p.Compatible != nil && !p.Compatible(p, other) {
		return false
	}
	if other.Compatible != nil && !other.Compatible(other, p) {
		return false
	}
	return true
}

// EstimatedDownloadMB sums the download size of every component.
func (p *Profile) EstimatedDownloadMB() float64 {
	var total float64
	for _, c := range p.Components {
		total += c.DownloadSizeMB
	}
	return total
}

// EstimatedInstallMinutes sums the install time of every component.
func (p *Profile) EstimatedInstallMinutes() float64 {
	var total float64
	for _, c := range p.Components {
		total += c.InstallTimeMinutes
	}
	return total
}

// Validate returns the problems that prevent p from being registered.
// An empty result means the profile is usable.
func (p *Profile) Validate() []string {
	var issues []string

	if p.ID == "" {
		issues = append(issues, "id is required")
	} else if !idPattern.MatchString(p.ID) {
		issues = append(issues, fmt.Sprintf("id %q may only contain letters, digits, '.', '_' and '-'", p.ID))
	}
	if p.Name == "" {
		issues = append(issues, "name is required")
	}

	r := p.Requirements
	if r.RAMGB < 0 {
		issues = append(issues, "requirements.ram_gb must not be negative")
	}
	if r.DiskGB < 0 {
		issues = append(issues, "requirements.disk_gb must not be negative")
	}
	if r.CPUCores < 0 {
		issues = append(issues, "requirements.cpu_cores must not be negative")
	}

	seen := make(map[string]bool, len(p.Components))
	for i, c := range p.Components {
		if c.ID != "" {
			if seen[c.ID] {
				issues = append(issues, fmt.Sprintf("components[%d]: duplicate component id %q", i, c.ID))
			}
			seen[c.ID] = true
		}
		for _, msg := range c.Validate() {
			issues = append(issues, fmt.Sprintf("components[%d]: %s", i, msg))
		}
	}

	for i, v := range p.VerificationSteps {
		if v.Name == "" {
			issues = append(issues, fmt.Sprintf("verification_steps[%d]: name is required", i))
		}
		if v.Command == "" {
			issues = append(issues, fmt.Sprintf("verification_steps[%d]: command is required", i))
		}
	}

	return issues
}

// VerificationStep describes a post-install check. It is carried through
// installation plans but never executed here.
type VerificationStep struct {
	Name           string `yaml:"name" json:"name"`
	Command        string `yaml:"command" json:"command"`
	ExpectedOutput string `yaml:"expected_output,omitempty" json:"expected_output,omitempty"`
	ContainsText   string `yaml:"contains_text,omitempty" json:"contains_text,omitempty"`
}

// Capacity is what the host can offer, as reported by a system probe.
type Capacity struct {
	RAMTotalGB float64 `yaml:"ram_total_gb" json:"ram_total_gb"`
	DiskFreeGB float64 `yaml:"disk_free_gb" json:"disk_free_gb"`
	CPUCores   int     `yaml:"cpu_cores" json:"cpu_cores"`
}

// Fits reports whether r can be satisfied by c.
func (c Capacity) Fits(r Requirements) bool {
	return r.RAMGB <= c.RAMTotalGB && r.DiskGB <= c.DiskFreeGB && r.CPUCores <= c.CPUCores
}

func contains(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
