package definition

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

// profileEnv is what a compatible_when expression sees of a profile.
type profileEnv struct {
	ID           string   `expr:"id"`
	Name         string   `expr:"name"`
	Category     string   `expr:"category"`
	Dependencies []string `expr:"dependencies"`
	Conflicts    []string `expr:"conflicts"`
	RAMGB        float64  `expr:"ram_gb"`
	DiskGB       float64  `expr:"disk_gb"`
	CPUCores     int      `expr:"cpu_cores"`
}

type compatibilityEnv struct {
	Self  profileEnv `expr:"self"`
	Other profileEnv `expr:"other"`
}

func envFor(p *model.Profile) profileEnv {
	return profileEnv{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Dependencies: p.Dependencies,
		Conflicts:    p.Conflicts,
		RAMGB:        p.Requirements.RAMGB,
		DiskGB:       p.Requirements.DiskGB,
		CPUCores:     p.Requirements.CPUCores,
	}
}

// compileCompatibility turns a compatible_when expression into a
// compatibility predicate, e.g. `other.category != "mobile"`.
// Evaluation errors count as incompatible.
func compileCompatibility(expression string) (model.CompatibilityFunc, error) {
	program, err := expr.Compile(expression, expr.Env(compatibilityEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling compatible_when: %w", err)
	}
	return func(self, other *model.Profile) bool {
		return evalCompatibility(program, self, other)
	}, nil
}

func evalCompatibility(program *vm.Program, self, other *model.Profile) bool {
	out, err := expr.Run(program, compatibilityEnv{Self: envFor(self), Other: envFor(other)})
	if err != nil {
		return false
	}
	ok, isBool := out.(bool)
	return isBool && ok
}
