// Package profiles holds the builtin profile definitions. Each category
// file exposes a fixed list of constructors which init() registers in a
// fixed category order; the catalog reads them through Source.
package profiles

import (
	"fmt"

	"github.com/he2plus/he2plus-lib-sub001/internal/catalog"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

type categoryEntry struct {
	name  string
	ctors []catalog.Constructor
}

var registry []*categoryEntry

// Register adds constructors to a category, creating it on first use.
// Categories keep their registration order.
func Register(category string, ctors ...catalog.Constructor) {
	for _, e := range registry {
		if e.name == category {
			e.ctors = append(e.ctors, ctors...)
			return
		}
	}
	registry = append(registry, &categoryEntry{name: category, ctors: ctors})
}

// Source exposes the builtin registry to the catalog.
func Source() catalog.Source {
	return builtinSource{}
}

type builtinSource struct{}

func (builtinSource) Name() string { return "builtin" }

func (builtinSource) Categories() ([]string, error) {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.name
	}
	return out, nil
}

func (builtinSource) Definitions(category string) ([]catalog.Constructor, error) {
	for _, e := range registry {
		if e.name == category {
			return e.ctors, nil
		}
	}
	return nil, fmt.Errorf("unknown builtin category %q", category)
}

func init() {
	Register(model.CategoryLanguages, languages...)
	Register(model.CategoryWeb, web...)
	Register(model.CategoryWeb3, web3...)
	Register(model.CategoryData, data...)
	Register(model.CategoryMobile, mobile...)
	Register(model.CategoryDevOps, devops...)
}

// define wraps a profile factory as a catalog constructor.
func define(build func() *model.Profile) catalog.Constructor {
	return func() (*model.Profile, error) {
		return build(), nil
	}
}
