package resolver

import "github.com/he2plus/he2plus-lib-sub001/internal/model"

// Totals aggregates the cost of a plan.
type Totals struct {
	RAMGB          float64 `yaml:"ram_gb" json:"ram_gb"`
	DiskGB         float64 `yaml:"disk_gb" json:"disk_gb"`
	DownloadMB     float64 `yaml:"download_mb" json:"download_mb"`
	InstallMinutes float64 `yaml:"install_minutes" json:"install_minutes"`
}

// Plan is the ordered installation handed to an installer. Components and
// verification steps are concatenated in profile order without
// de-duplication.
type Plan struct {
	OrderedInstallation []string                 `yaml:"ordered_installation" json:"ordered_installation"`
	Totals              Totals                   `yaml:"totals" json:"totals"`
	Components          []model.Component        `yaml:"components" json:"components"`
	Verification        []model.VerificationStep `yaml:"verification" json:"verification"`
}

// InstallationPlan resolves ids and aggregates the resulting profiles.
// It fails only when the dependency graph has a cycle.
func (r *Resolver) InstallationPlan(ids []string) (*Plan, error) {
	order, err := r.Resolve(ids)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		OrderedInstallation: order,
		Components:          []model.Component{},
		Verification:        []model.VerificationStep{},
	}
	for _, id := range order {
		p, ok := r.catalog.Get(id)
		if !ok {
			continue
		}
		plan.Totals.RAMGB += p.Requirements.RAMGB
		plan.Totals.DiskGB += p.Requirements.DiskGB
		plan.Totals.DownloadMB += p.EstimatedDownloadMB()
		plan.Totals.InstallMinutes += p.EstimatedInstallMinutes()
		plan.Components = append(plan.Components, p.Components...)
		plan.Verification = append(plan.Verification, p.VerificationSteps...)
	}
	if plan.OrderedInstallation == nil {
		plan.OrderedInstallation = []string{}
	}
	return plan, nil
}
