package profiles

import (
	"github.com/he2plus/he2plus-lib-sub001/internal/catalog"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

var web = []catalog.Constructor{
	define(webFrontend),
	define(webFullstack),
}

func webFrontend() *model.Profile {
	return &model.Profile{
		ID:           "web-frontend",
		Name:         "Frontend Web Development",
		Description:  "TypeScript, Vite and browser tooling for single-page applications",
		Category:     model.CategoryWeb,
		Requirements: model.Requirements{RAMGB: 4, DiskGB: 3, CPUCores: 2},
		Dependencies: []string{"nodejs"},
		Components: []model.Component{
			{
				ID: "typescript", Name: "TypeScript", Category: "language", Version: ">=5.0.0",
				DownloadSizeMB: 25, InstallTimeMinutes: 1,
				InstallMethods: []string{"npm:typescript"},
			},
			{
				ID: "vite", Name: "Vite", Category: "build", Version: "latest",
				DownloadSizeMB: 15, InstallTimeMinutes: 1,
				InstallMethods: []string{"npm:vite"},
			},
			{
				ID: "playwright", Name: "Playwright", Category: "testing", Version: "latest",
				Description:    "Browser automation for end-to-end tests",
				DownloadSizeMB: 400, InstallTimeMinutes: 5,
				InstallMethods: []string{"npm:@playwright/test"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "TypeScript compiler", Command: "npx tsc --version", ContainsText: "Version"},
		},
	}
}

func webFullstack() *model.Profile {
	return &model.Profile{
		ID:           "web-fullstack",
		Name:         "Full-stack Web Development",
		Description:  "Frontend tooling plus a Python API stack and a local PostgreSQL",
		Category:     model.CategoryWeb,
		Requirements: model.Requirements{RAMGB: 8, DiskGB: 10, CPUCores: 4},
		Dependencies: []string{"web-frontend", "python", "docker"},
		Components: []model.Component{
			{
				ID: "postgresql", Name: "PostgreSQL", Category: "database", Version: ">=15",
				DownloadSizeMB: 180, InstallTimeMinutes: 4,
				InstallMethods: []string{"brew:postgresql@16", "apt:postgresql", "docker:postgres:16"},
			},
			{
				ID: "fastapi", Name: "FastAPI", Category: "framework", Version: "latest",
				DownloadSizeMB: 5, InstallTimeMinutes: 1,
				InstallMethods: []string{"pip:fastapi[standard]"},
			},
		},
		VerificationSteps: []model.VerificationStep{
			{Name: "PostgreSQL client", Command: "psql --version", ContainsText: "psql"},
		},
	}
}
