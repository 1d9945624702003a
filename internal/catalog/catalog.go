// Package catalog indexes the known profiles by id and category.
//
// A Catalog is created once, loaded once from its sources, and is read-only
// afterwards. Load is guarded by a plain flag: callers that query from
// several goroutines must call Load before starting them.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/he2plus/he2plus-lib-sub001/internal/model"
	"github.com/rs/zerolog"
)

// ErrDuplicateProfile is wrapped by failures for an id that is already registered.
var ErrDuplicateProfile = errors.New("profile id already registered")

// Catalog holds every loaded profile.
type Catalog struct {
	sources []Source
	logger  zerolog.Logger

	loaded     bool
	profiles   []*model.Profile
	byID       map[string]*model.Profile
	byCategory map[string][]*model.Profile
	categories []string
	failures   []*DiscoveryFailure
}

// New creates an empty, unloaded catalog reading from sources in order.
// The logger is used as given; callers tag it, e.g. with
// logging.GetLogger("catalog").
func New(logger zerolog.Logger, sources ...Source) *Catalog {
	return &Catalog{
		sources:    sources,
		logger:     logger,
		byID:       make(map[string]*model.Profile),
		byCategory: make(map[string][]*model.Profile),
	}
}

// Load populates the catalog from its sources. It is a no-op once loaded.
// Definitions that fail to build or validate are skipped and kept in
// Failures; the first profile registered under an id wins.
func (c *Catalog) Load() {
	if c.loaded {
		return
	}
	c.loaded = true

	for _, src := range c.sources {
		categories, err := src.Categories()
		if err != nil {
			c.fail(&DiscoveryFailure{Source: src.Name(), Err: err})
			continue
		}
		for _, category := range categories {
			ctors, err := src.Definitions(category)
			if err != nil {
				c.fail(&DiscoveryFailure{Source: src.Name(), Category: category, Err: err})
				continue
			}
			for _, ctor := range ctors {
				c.register(src.Name(), category, ctor)
			}
		}
	}

	c.logger.Debug().
		Int("profiles", len(c.profiles)).
		Int("categories", len(c.categories)).
		Int("failures", len(c.failures)).
		Msg("Catalog loaded")
}

func (c *Catalog) register(source, category string, ctor Constructor) {
	p, err := build(ctor)
	if err != nil {
		c.fail(&DiscoveryFailure{Source: source, Category: category, Err: err})
		return
	}

	if p.Category == "" {
		p.Category = category
	}
	if p.Category == "" {
		p.Category = model.CategorizeProfile(p.ID, p.Name)
	}
	if p.Category == "" {
		p.Category = model.CategoryOther
	}

	if issues := p.Validate(); len(issues) > 0 {
		c.fail(&DiscoveryFailure{Source: source, Category: category, ProfileID: p.ID, Issues: issues})
		return
	}

	if _, exists := c.byID[p.ID]; exists {
		c.fail(&DiscoveryFailure{Source: source, Category: category, ProfileID: p.ID, Err: ErrDuplicateProfile})
		return
	}

	c.profiles = append(c.profiles, p)
	c.byID[p.ID] = p
	if _, ok := c.byCategory[p.Category]; !ok {
		c.categories = append(c.categories, p.Category)
	}
	c.byCategory[p.Category] = append(c.byCategory[p.Category], p)
}

// build runs a constructor, turning panics into errors so one broken
// definition cannot take the whole load down.
func build(ctor Constructor) (p *model.Profile, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("constructor panicked: %v", r)
		}
	}()
	p, err = ctor()
	if err == nil && p == nil {
		err = errors.New("constructor returned no profile")
	}
	return p, err
}

func (c *Catalog) fail(f *DiscoveryFailure) {
	c.failures = append(c.failures, f)
	c.logger.Warn().
		Str("source", f.Source).
		Str("category", f.Category).
		Str("profile", f.ProfileID).
		Strs("issues", f.Issues).
		AnErr("error", f.Err).
		Msg("Skipping profile definition")
}

// Loaded reports whether Load has run.
func (c *Catalog) Loaded() bool {
	return c.loaded
}

// Failures returns the definitions that were skipped during load.
func (c *Catalog) Failures() []*DiscoveryFailure {
	c.Load()
	out := make([]*DiscoveryFailure, len(c.failures))
	copy(out, c.failures)
	return out
}

// Get looks up a profile by id.
func (c *Catalog) Get(id string) (*model.Profile, bool) {
	c.Load()
	p, ok := c.byID[id]
	return p, ok
}

// Has reports whether id is a known profile.
func (c *Catalog) Has(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Len returns the number of registered profiles.
func (c *Catalog) Len() int {
	c.Load()
	return len(c.profiles)
}

// All returns every profile in load order.
func (c *Catalog) All() []*model.Profile {
	c.Load()
	out := make([]*model.Profile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

// Range calls fn for each profile in load order until fn returns false.
func (c *Catalog) Range(fn func(p *model.Profile) bool) {
	c.Load()
	for _, p := range c.profiles {
		if !fn(p) {
			return
		}
	}
}

// ByCategory returns the profiles of a category, or nil for an unknown one.
func (c *Catalog) ByCategory(category string) []*model.Profile {
	c.Load()
	profiles := c.byCategory[category]
	if len(profiles) == 0 {
		return nil
	}
	out := make([]*model.Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	c.Load()
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Search returns profiles whose id, name, description or category contains
// query, ignoring case, in load order.
func (c *Catalog) Search(query string) []*model.Profile {
	c.Load()
	q := strings.ToLower(query)

	var out []*model.Profile
	for _, p := range c.profiles {
		if strings.Contains(strings.ToLower(p.ID), q) ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}
