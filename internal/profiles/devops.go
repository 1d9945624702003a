package profiles

import (
	"github.com/he2plus/he2plus-lib-sub001/internal/catalog"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

var devops = []catalog.Constructor{
	define(docker),
	define(podman),
	define(kubernetes),
}

func docker() *model.Profile {
	return &model.Profile{
		ID:           "docker",
		Name:         "Docker",
		Description:  "Docker Engine or Docker Desktop with the compose plugin",
		Category:     model.CategoryDevOps,
		Requirements: model.Requirements{RAMGB: 4, DiskGB: 20, CPUCores: 2},
		Conflicts:    []string{"podman"},
		Components: []model.Component{
			{
				ID: "docker", Name: "Docker", Category: "container-runtime", Version: ">=24.0.0",
				DownloadSizeMB: 600, InstallTimeMinutes: 6,
				InstallMethods: []string{"brew:docker-desktop", "apt:docker-ce", "winget:Docker.DockerDesktop"},
			},
			{
				ID: "docker-compose", Name: "Docker Compose", Category: "container-runtime", Version: ">=2.20.0",
				DownloadSizeMB: 60, InstallTimeMinutes: 1,
				DependsOn:      []string{"docker"},
				InstallMethods: []string{"apt:docker-compose-plugin", "brew"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "Docker engine", Command: "docker version --format '{{.Server.Version}}'"},
			{Name: "Docker Compose", Command: "docker compose version", ContainsText: "Docker Compose"},
		},
	}
}

func podman() *model.Profile {
	return &model.Profile{
		ID:           "podman",
		Name:         "Podman",
		Description:  "Daemonless container engine, a Docker alternative",
		Category:     model.CategoryDevOps,
		Requirements: model.Requirements{RAMGB: 4, DiskGB: 15, CPUCores: 2},
		Conflicts:    []string{"docker"},
		Components: []model.Component{
			{
				ID: "podman", Name: "Podman", Category: "container-runtime", Version: ">=4.0.0",
				DownloadSizeMB: 350, InstallTimeMinutes: 4,
				InstallMethods: []string{"brew", "apt", "winget:RedHat.Podman"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "Podman", Command: "podman --version", ContainsText: "podman version"},
		},
	}
}

func kubernetes() *model.Profile {
	return &model.Profile{
		ID:           "kubernetes",
		Name:         "Kubernetes Tooling",
		Description:  "kubectl, Helm and kind for local clusters",
		Category:     model.CategoryDevOps,
		Requirements: model.Requirements{RAMGB: 8, DiskGB: 20, CPUCores: 4},
		Dependencies: []string{"docker"},
		Components: []model.Component{
			{
				ID: "kubectl", Name: "kubectl", Category: "cli", Version: ">=1.28.0",
				DownloadSizeMB: 50, InstallTimeMinutes: 1,
				InstallMethods: []string{"brew:kubernetes-cli", "apt", "winget:Kubernetes.kubectl"},
			},
			{
				ID: "helm", Name: "Helm", Category: "cli", Version: ">=3.12.0",
				DownloadSizeMB: 50, InstallTimeMinutes: 1,
				InstallMethods: []string{"brew", "snap", "winget:Helm.Helm"},
			},
			{
				ID: "kind", Name: "kind", Category: "cluster", Version: "latest",
				DownloadSizeMB: 10, InstallTimeMinutes: 1,
				DependsOn:      []string{"kubectl"},
				InstallMethods: []string{"brew", "go:sigs.k8s.io/kind@latest"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "kubectl", Command: "kubectl version --client", ContainsText: "Client Version"},
			{Name: "Helm", Command: "helm version --short", ContainsText: "v3"},
		},
	}
}
