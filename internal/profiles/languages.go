package profiles

import (
	"github.com/he2plus/he2plus-lib-sub001/internal/catalog"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

var languages = []catalog.Constructor{
	define(python),
	define(nodejs),
	define(golang),
	define(rust),
	define(java),
}

func python() *model.Profile {
	return &model.Profile{
		ID:           "python",
		Name:         "Python Development",
		Description:  "Python 3 interpreter with pip, pipx and virtual environment tooling",
		Category:     model.CategoryLanguages,
		Requirements: model.Requirements{RAMGB: 2, DiskGB: 3, CPUCores: 1},
		Components: []model.Component{
			{
				ID: "python3", Name: "Python 3", Category: "runtime", Version: ">=3.11",
				Description:    "CPython interpreter",
				DownloadSizeMB: 45, InstallTimeMinutes: 4,
				InstallMethods: []string{"brew:python@3.12", "apt:python3", "winget:Python.Python.3.12"},
			},
			{
				ID: "pipx", Name: "pipx", Category: "tooling", Version: "latest",
				Description:    "Install and run Python applications in isolated environments",
				DownloadSizeMB: 2, InstallTimeMinutes: 1,
				DependsOn:      []string{"python3"},
				InstallMethods: []string{"brew", "apt", "pip"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "Python interpreter", Command: "python3 --version", ContainsText: "Python 3"},
			{Name: "pipx", Command: "pipx --version"},
		},
	}
}

func nodejs() *model.Profile {
	return &model.Profile{
		ID:           "nodejs",
		Name:         "Node.js Development",
		Description:  "Node.js LTS runtime with npm and the pnpm package manager",
		Category:     model.CategoryLanguages,
		Requirements: model.Requirements{RAMGB: 2, DiskGB: 2, CPUCores: 1},
		Components: []model.Component{
			{
				ID: "node", Name: "Node.js", Category: "runtime", Version: ">=20.0.0",
				DownloadSizeMB: 35, InstallTimeMinutes: 3,
				InstallMethods: []string{"brew:node@20", "apt:nodejs", "winget:OpenJS.NodeJS.LTS"},
			},
			{
				ID: "pnpm", Name: "pnpm", Category: "tooling", Version: "latest",
				DownloadSizeMB: 10, InstallTimeMinutes: 1,
				DependsOn:      []string{"node"},
				InstallMethods: []string{"npm:pnpm", "brew"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "Node.js runtime", Command: "node --version", ContainsText: "v"},
			{Name: "npm", Command: "npm --version"},
		},
	}
}

func golang() *model.Profile {
	return &model.Profile{
		ID:           "go",
		Name:         "Go Development",
		Description:  "Go toolchain with gopls and golangci-lint",
		Category:     model.CategoryLanguages,
		Requirements: model.Requirements{RAMGB: 2, DiskGB: 3, CPUCores: 2},
		Components: []model.Component{
			{
				ID: "go", Name: "Go", Category: "runtime", Version: ">=1.22",
				DownloadSizeMB: 70, InstallTimeMinutes: 2,
				InstallMethods: []string{"brew", "apt:golang-go", "winget:GoLang.Go"},
			},
			{
				ID: "gopls", Name: "gopls", Category: "tooling", Version: "latest",
				DownloadSizeMB: 15, InstallTimeMinutes: 2,
				DependsOn:      []string{"go"},
				InstallMethods: []string{"go:golang.org/x/tools/gopls@latest", "brew"},
			},
			{
				ID: "golangci-lint", Name: "golangci-lint", Category: "tooling", Version: "latest",
				DownloadSizeMB: 40, InstallTimeMinutes: 1,
				InstallMethods: []string{"brew", "go:github.com/golangci/golangci-lint/cmd/golangci-lint@latest"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "Go toolchain", Command: "go version", ContainsText: "go version"},
		},
	}
}

func rust() *model.Profile {
	return &model.Profile{
		ID:           "rust",
		Name:         "Rust Development",
		Description:  "Rust toolchain managed by rustup, with cargo and rust-analyzer",
		Category:     model.CategoryLanguages,
		Requirements: model.Requirements{RAMGB: 4, DiskGB: 5, CPUCores: 2},
		Components: []model.Component{
			{
				ID: "rustup", Name: "rustup", Category: "runtime", Version: "latest",
				DownloadSizeMB: 250, InstallTimeMinutes: 6,
				InstallMethods: []string{"brew", "curl:https://sh.rustup.rs", "winget:Rustlang.Rustup"},
			},
			{
				ID: "rust-analyzer", Name: "rust-analyzer", Category: "tooling", Version: "latest",
				DownloadSizeMB: 20, InstallTimeMinutes: 1,
				DependsOn:      []string{"rustup"},
				InstallMethods: []string{"rustup:rust-analyzer", "brew"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "rustc", Command: "rustc --version", ContainsText: "rustc"},
			{Name: "cargo", Command: "cargo --version", ContainsText: "cargo"},
		},
	}
}

func java() *model.Profile {
	return &model.Profile{
		ID:           "java",
		Name:         "Java Development",
		Description:  "OpenJDK with Gradle and Maven build tools",
		Category:     model.CategoryLanguages,
		Requirements: model.Requirements{RAMGB: 4, DiskGB: 4, CPUCores: 2},
		Components: []model.Component{
			{
				ID: "openjdk", Name: "OpenJDK", Category: "runtime", Version: ">=17",
				DownloadSizeMB: 190, InstallTimeMinutes: 4,
				InstallMethods: []string{"brew:openjdk@17", "apt:openjdk-17-jdk", "winget:Microsoft.OpenJDK.17"},
			},
			{
				ID: "gradle", Name: "Gradle", Category: "build", Version: "latest",
				DownloadSizeMB: 130, InstallTimeMinutes: 2,
				DependsOn:      []string{"openjdk"},
				InstallMethods: []string{"brew", "sdkman:gradle"},
			},
			{
				ID: "maven", Name: "Maven", Category: "build", Version: "latest",
				DownloadSizeMB: 10, InstallTimeMinutes: 1,
				DependsOn:      []string{"openjdk"},
				InstallMethods: []string{"brew", "apt"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "Java compiler", Command: "javac -version", ContainsText: "javac"},
		},
	}
}
