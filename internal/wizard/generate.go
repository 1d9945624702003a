package wizard

import (
	"bytes"

	"github.com/he2plus/he2plus-lib-sub001/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file the wizard writes in the working directory.
const ConfigFileName = config.AppName + ".yml"

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	Profiles    []string
	ProfileDirs []string
	Output      string

	// Pin the probed capacity so later runs skip probing.
	PinCapacity bool
	Capacity    config.Capacity
}

const configHeader = "# he2plus configuration\n"

// configDocument mirrors the keys config.Load reads.
type configDocument struct {
	Profiles    []string          `yaml:"profiles"`
	ProfileDirs []string          `yaml:"profile_dirs,omitempty"`
	Output      string            `yaml:"output"`
	Capacity    *capacityDocument `yaml:"capacity,omitempty"`
}

type capacityDocument struct {
	RAMTotalGB float64 `yaml:"ram_total_gb"`
	DiskFreeGB float64 `yaml:"disk_free_gb"`
	CPUCores   int     `yaml:"cpu_cores"`
}

// GenerateConfig renders the YAML config from wizard answers. Values are
// quoted by the encoder wherever YAML needs it.
func GenerateConfig(answers WizardAnswers) (string, error) {
	doc := configDocument{
		Profiles:    answers.Profiles,
		ProfileDirs: answers.ProfileDirs,
		Output:      answers.Output,
	}
	if doc.Profiles == nil {
		doc.Profiles = []string{}
	}
	if doc.Output == "" {
		doc.Output = config.OutputText
	}
	if answers.PinCapacity {
		doc.Capacity = &capacityDocument{
			RAMTotalGB: answers.Capacity.RAMTotalGB,
			DiskFreeGB: answers.Capacity.DiskFreeGB,
			CPUCores:   answers.Capacity.CPUCores,
		}
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	return buf.String(), nil
}
