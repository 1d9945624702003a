package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInstallMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected InstallMethod
	}{
		{"brew", InstallMethod{Manager: "brew"}},
		{"APT", InstallMethod{Manager: "apt"}},
		{"brew:python@3.12", InstallMethod{Manager: "brew", Package: "python@3.12"}},
		{" pip : numpy ", InstallMethod{Manager: "pip", Package: "numpy"}},
		{"", InstallMethod{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseInstallMethod(tt.input))
		})
	}
}

func TestInstallMethodString(t *testing.T) {
	assert.Equal(t, "brew", InstallMethod{Manager: "brew"}.String())
	assert.Equal(t, "apt:python3", InstallMethod{Manager: "apt", Package: "python3"}.String())
}

func TestComponentManagers(t *testing.T) {
	c := Component{InstallMethods: []string{"brew:node", "apt", "", "npm"}}
	assert.Equal(t, []string{"brew", "apt", "npm"}, c.Managers())
}
