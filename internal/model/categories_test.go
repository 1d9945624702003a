package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeProfile(t *testing.T) {
	tests := []struct {
		id       string
		name     string
		expected string
	}{
		{"python", "", CategoryLanguages},
		{"go", "Go Toolchain", CategoryLanguages},
		{"web3-solidity", "Solidity Development", CategoryWeb3},
		{"eth-tools", "Ethereum tooling", CategoryWeb3},
		{"mobile-flutter", "", CategoryMobile},
		{"react-native-dev", "", CategoryMobile},
		{"data-science", "Data Science", CategoryData},
		{"ml-gpu", "", CategoryData},
		{"docker", "Docker Engine", CategoryDevOps},
		{"k8s", "Kubernetes tooling", CategoryDevOps},
		{"web-frontend", "", CategoryWeb},
		{"my-custom-stack", "Internal tools", ""},
		{"cargo", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategorizeProfile(tt.id, tt.name))
		})
	}
}
