package model

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Component is one installable unit belonging to a profile. DependsOn is
// descriptive only; ordering is computed over profiles, not components.
type Component struct {
	ID                 string   `yaml:"id" json:"id"`
	Name               string   `yaml:"name" json:"name"`
	Description        string   `yaml:"description,omitempty" json:"description,omitempty"`
	Category           string   `yaml:"category,omitempty" json:"category,omitempty"`
	Version            string   `yaml:"version,omitempty" json:"version,omitempty"`
	DownloadSizeMB     float64  `yaml:"download_size_mb" json:"download_size_mb"`
	InstallTimeMinutes float64  `yaml:"install_time_minutes" json:"install_time_minutes"`
	DependsOn          []string `yaml:"depends_on,omitempty" json:"depends_on,omitempty"`
	InstallMethods     []string `yaml:"install_methods" json:"install_methods"`
}

// Validate checks the component in isolation.
func (c Component) Validate() []string {
	var issues []string
	if c.ID == "" {
		issues = append(issues, "id is required")
	}
	if c.Name == "" {
		issues = append(issues, "name is required")
	}
	if c.Version != "" && c.Version != "latest" {
		if _, err := semver.NewConstraint(c.Version); err != nil {
			issues = append(issues, fmt.Sprintf("version %q is not a valid version constraint", c.Version))
		}
	}
	if c.DownloadSizeMB < 0 {
		issues = append(issues, "download_size_mb must not be negative")
	}
	if c.InstallTimeMinutes < 0 {
		issues = append(issues, "install_time_minutes must not be negative")
	}
	if len(c.InstallMethods) == 0 {
		issues = append(issues, "at least one install method is required")
	}
	for _, m := range c.InstallMethods {
		if ParseInstallMethod(m).Manager == "" {
			issues = append(issues, fmt.Sprintf("install method %q has no package manager", m))
		}
	}
	return issues
}
