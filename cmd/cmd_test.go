package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/he2plus/he2plus-lib-sub001/internal/model"
	"github.com/he2plus/he2plus-lib-sub001/internal/resolver"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customProfile = `
id: solana
name: Solana Development
description: Rust programs for the Solana runtime
dependencies: [rust]
requirements:
  ram_gb: 8
  disk_gb: 20
  cpu_cores: 4
components:
  - id: solana-cli
    name: Solana CLI
    install_methods: ["brew:solana"]
    download_size_mb: 120
    install_time_minutes: 5
`

// execute runs the root command against a temporary config that points
// at a temporary profile directory.
func execute(t *testing.T, configBody string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	profileDir := filepath.Join(dir, "profiles", "web3")
	require.NoError(t, os.MkdirAll(profileDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(profileDir, "solana.yaml"), []byte(customProfile), 0o644))

	cfgPath := filepath.Join(dir, "he2plus.yml")
	body := "profile_dirs: [" + filepath.Join(dir, "profiles") + "]\n" + configBody
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	viper.Reset()
	t.Cleanup(viper.Reset)
	listCategory, planFormat, planOutput, planBrief = "", "", "", false
	recRAM, recDisk, recCPU = 0, 0, 0
	infoRaw = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCategory(t *testing.T) {
	out, err := execute(t, "", "list", "--category", "web3")
	require.NoError(t, err)

	assert.Contains(t, out, "web3-solidity")
	assert.Contains(t, out, "solana")
	assert.NotContains(t, out, "python")
}

func TestListUnknownCategory(t *testing.T) {
	_, err := execute(t, "", "list", "--category", "gardening")
	assert.ErrorContains(t, err, "gardening")
}

func TestCategories(t *testing.T) {
	out, err := execute(t, "", "categories")
	require.NoError(t, err)

	assert.Contains(t, out, "languages")
	assert.Contains(t, out, "(5)")
	assert.Contains(t, out, "web3")
	assert.Contains(t, out, "(2)")
}

func TestSearch(t *testing.T) {
	out, err := execute(t, "", "search", "SOLIDITY")
	require.NoError(t, err)
	assert.Contains(t, out, "web3-solidity")

	out, err = execute(t, "", "search", "nothing-matches-this")
	require.NoError(t, err)
	assert.Contains(t, out, "No profiles match")
}

func TestPlanJSON(t *testing.T) {
	out, err := execute(t, "", "plan", "web-fullstack", "--format", "json")
	require.NoError(t, err)

	var plan resolver.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, []string{"nodejs", "web-frontend", "python", "docker", "web-fullstack"}, plan.OrderedInstallation)
	assert.NotEmpty(t, plan.Components)
}

func TestPlanUsesConfiguredProfilesAndFileDefinitions(t *testing.T) {
	out, err := execute(t, "profiles: [solana]\noutput: yaml\n", "plan")
	require.NoError(t, err)

	assert.Contains(t, out, "ordered_installation:")
	assert.Contains(t, out, "- rust\n")
	assert.Contains(t, out, "- solana\n")
	assert.True(t, strings.Index(out, "- rust\n") < strings.Index(out, "- solana\n"))
}

func TestPlanWritesFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "plan.yaml")
	out, err := execute(t, "", "plan", "python", "--format", "yaml", "--output", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- python")
}

func TestPlanNoSelection(t *testing.T) {
	_, err := execute(t, "", "plan")
	assert.ErrorContains(t, err, "no profiles selected")
}

func TestValidateConflict(t *testing.T) {
	out, err := execute(t, "", "validate", "docker", "podman")
	require.Error(t, err)
	assert.Contains(t, out, "Incompatible profiles: docker and podman")
}

func TestValidateClean(t *testing.T) {
	out, err := execute(t, "", "validate", "python", "go")
	require.NoError(t, err)
	assert.Contains(t, out, "All checks passed")
}

func TestRecommendWithPinnedCapacity(t *testing.T) {
	out, err := execute(t, "", "recommend", "--ram", "2", "--disk", "3", "--cpu", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "python")
	assert.Contains(t, out, "nodejs")
	assert.NotContains(t, out, "docker")
	assert.True(t, strings.Index(out, "python") < strings.Index(out, "nodejs"))
}

func TestInfoRaw(t *testing.T) {
	out, err := execute(t, "", "info", "kubernetes", "--raw")
	require.NoError(t, err)

	assert.Contains(t, out, "`kubernetes` in **devops**")
	assert.Contains(t, out, "1. docker\n2. kubernetes")
}

func TestInfoUnknown(t *testing.T) {
	_, err := execute(t, "", "info", "cobol")
	assert.ErrorContains(t, err, "unknown profile")
}

func TestManagerAvailability(t *testing.T) {
	orig := findExecutable
	t.Cleanup(func() { findExecutable = orig })
	findExecutable = func(name string) (string, error) {
		if name == "brew" {
			return "/opt/homebrew/bin/brew", nil
		}
		return "", errors.New("not found")
	}

	plan := &resolver.Plan{}
	plan.Components = append(plan.Components,
		componentWith("brew:node", "apt:nodejs"),
		componentWith("npm:vite", "brew"),
	)

	found, missing := managerAvailability(plan)
	assert.Equal(t, []string{"brew"}, found)
	assert.Equal(t, []string{"apt", "npm"}, missing)
}

func componentWith(methods ...string) model.Component {
	return model.Component{ID: methods[0], Name: methods[0], InstallMethods: methods}
}
