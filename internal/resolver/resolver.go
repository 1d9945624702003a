// Package resolver plans installations over a loaded catalog: dependency
// ordering, compatibility checks, cost totals and validation. Every method
// is a pure read of the catalog and its arguments.
package resolver

import (
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

// Catalog is the read-only view of the profile catalog the resolver needs.
type Catalog interface {
	Get(id string) (*model.Profile, bool)
	All() []*model.Profile
}

// Resolver answers dependency and planning questions about a catalog.
type Resolver struct {
	catalog Catalog

	// Priority orders recommendations; unlisted profiles come last.
	Priority []string
}

// New creates a resolver using DefaultPriority.
func New(c Catalog) *Resolver {
	priority := make([]string, len(DefaultPriority))
	copy(priority, DefaultPriority)
	return &Resolver{catalog: c, Priority: priority}
}

// Dependencies returns the union of the direct dependencies of ids, in
// first-seen order. Unknown ids contribute nothing.
func (r *Resolver) Dependencies(ids []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, id := range ids {
		p, ok := r.catalog.Get(id)
		if !ok {
			continue
		}
		for _, dep := range p.Dependencies {
			if !seen[dep] {
				seen[dep] = true
				out = append(out, dep)
			}
		}
	}
	return out
}

// CompatibleProfiles returns every catalog profile outside ids that is
// compatible with all known profiles in ids.
func (r *Resolver) CompatibleProfiles(ids []string) []*model.Profile {
	requested := r.known(ids)
	if len(requested) == 0 {
		return nil
	}

	exclude := make(map[string]bool, len(ids))
	for _, id := range ids {
		exclude[id] = true
	}

	var out []*model.Profile
	for _, candidate := range r.catalog.All() {
		if exclude[candidate.ID] {
			continue
		}
		if compatibleWithAll(candidate, requested) {
			out = append(out, candidate)
		}
	}
	return out
}

func compatibleWithAll(candidate *model.Profile, profiles []*model.Profile) bool {
	for _, p := range profiles {
		if !p.IsCompatibleWith(candidate) {
			return false
		}
	}
	return true
}

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// Resolve orders ids and their transitive dependencies so that every
// dependency precedes its dependents. Ties follow the order of ids and then
// each profile's declared dependency order. Ids missing from the catalog
// are skipped. A cycle yields a *CircularDependencyError.
func (r *Resolver) Resolve(ids []string) ([]string, error) {
	state := make(map[string]visitState)
	var order []string

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return &CircularDependencyError{Profile: id}
		case visited:
			return nil
		}

		p, ok := r.catalog.Get(id)
		if !ok {
			return nil
		}

		state[id] = visiting
		for _, dep := range p.Dependencies {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[id] = visited
		order = append(order, id)
		return nil
	}

	for _, id := range ids {
		if err := visit(id); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// known maps ids to catalog profiles, dropping unknown ids and duplicates.
func (r *Resolver) known(ids []string) []*model.Profile {
	seen := make(map[string]bool, len(ids))
	var out []*model.Profile
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := r.catalog.Get(id); ok {
			out = append(out, p)
		}
	}
	return out
}
