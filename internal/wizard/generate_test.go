package wizard

import (
	"strings"
	"testing"

	"github.com/he2plus/he2plus-lib-sub001/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerateConfigMinimal(t *testing.T) {
	out, err := GenerateConfig(WizardAnswers{})
	require.NoError(t, err)

	assert.Contains(t, out, "profiles: []")
	assert.Contains(t, out, "output: text")
	assert.NotContains(t, out, "profile_dirs:")
	assert.NotContains(t, out, "capacity:")
}

func TestGenerateConfigFull(t *testing.T) {
	answers := WizardAnswers{
		Profiles:    []string{"python", "docker"},
		ProfileDirs: []string{"./profiles"},
		Output:      config.OutputYAML,
		PinCapacity: true,
		Capacity:    config.Capacity{RAMTotalGB: 15.5, DiskFreeGB: 120, CPUCores: 8},
	}

	out, err := GenerateConfig(answers)
	require.NoError(t, err)

	assert.Contains(t, out, "  - python\n  - docker")
	assert.Contains(t, out, "  - ./profiles")
	assert.Contains(t, out, "output: yaml")
	assert.Contains(t, out, "ram_total_gb: 15.5")
	assert.Contains(t, out, "cpu_cores: 8")
}

func TestGenerateConfigRoundTrip(t *testing.T) {
	answers := WizardAnswers{
		Profiles:    []string{"web-fullstack"},
		Output:      config.OutputJSON,
		PinCapacity: true,
		Capacity:    config.Capacity{RAMTotalGB: 32, DiskFreeGB: 250.5, CPUCores: 12},
	}
	out, err := GenerateConfig(answers)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	viper.Reset()
	t.Cleanup(viper.Reset)
	require.NoError(t, viper.MergeConfigMap(doc))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"web-fullstack"}, cfg.Profiles)
	assert.Equal(t, config.OutputJSON, cfg.Output)
	assert.Equal(t, answers.Capacity, cfg.Capacity)
}

func TestGenerateConfigQuotesAwkwardPaths(t *testing.T) {
	answers := WizardAnswers{
		Profiles:    []string{"python", "# not a comment"},
		ProfileDirs: []string{"/home/me/dev #1/profiles", "/srv/a: b"},
	}
	out, err := GenerateConfig(answers)
	require.NoError(t, err)

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetConfigType("yml")
	require.NoError(t, viper.ReadConfig(strings.NewReader(out)))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, answers.ProfileDirs, cfg.ProfileDirs)
	assert.Equal(t, answers.Profiles, cfg.Profiles)
	assert.Equal(t, config.OutputText, cfg.Output)
}
