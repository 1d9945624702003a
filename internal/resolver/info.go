package resolver

import "github.com/he2plus/he2plus-lib-sub001/internal/model"

// ProfileInfo bundles everything known about a single profile.
type ProfileInfo struct {
	Profile      *model.Profile
	Plan         *Plan
	PlanErr      error // set when the profile's own plan cannot be ordered
	Compatible   []string
	Dependencies []string
	Conflicts    []string
}

// Info describes the profile id. The second result is false when id is unknown.
func (r *Resolver) Info(id string) (*ProfileInfo, bool) {
	p, ok := r.catalog.Get(id)
	if !ok {
		return nil, false
	}

	info := &ProfileInfo{
		Profile:      p,
		Dependencies: append([]string{}, p.Dependencies...),
		Conflicts:    append([]string{}, p.Conflicts...),
	}
	info.Plan, info.PlanErr = r.InstallationPlan([]string{id})
	for _, c := range r.CompatibleProfiles([]string{id}) {
		info.Compatible = append(info.Compatible, c.ID)
	}
	return info, true
}
