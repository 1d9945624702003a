package catalog

import "github.com/he2plus/he2plus-lib-sub001/internal/model"

// Constructor builds one profile definition. Construction errors are
// recorded as discovery failures; they never abort a load.
type Constructor func() (*model.Profile, error)

// Source supplies profile definitions grouped by category.
type Source interface {
	// Name identifies the source in diagnostics, e.g. "builtin".
	Name() string
	// Categories lists the categories the source can serve, in the order
	// they should be loaded.
	Categories() ([]string, error)
	// Definitions returns the constructors registered for a category.
	Definitions(category string) ([]Constructor, error)
}

// StaticSource serves profiles that were built ahead of time.
type StaticSource struct {
	name       string
	categories []string
	byCategory map[string][]*model.Profile
}

// NewStaticSource groups profiles by their Category. Categories keep the
// order they first appear in, and profiles keep the given order within
// each category.
func NewStaticSource(name string, profiles ...*model.Profile) *StaticSource {
	s := &StaticSource{name: name, byCategory: make(map[string][]*model.Profile)}
	for _, p := range profiles {
		if _, ok := s.byCategory[p.Category]; !ok {
			s.categories = append(s.categories, p.Category)
		}
		s.byCategory[p.Category] = append(s.byCategory[p.Category], p)
	}
	return s
}

func (s *StaticSource) Name() string { return s.name }

func (s *StaticSource) Categories() ([]string, error) {
	return s.categories, nil
}

func (s *StaticSource) Definitions(category string) ([]Constructor, error) {
	profiles := s.byCategory[category]
	out := make([]Constructor, len(profiles))
	for i, p := range profiles {
		out[i] = func() (*model.Profile, error) { return p, nil }
	}
	return out, nil
}
