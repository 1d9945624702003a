package profiles

import (
	"testing"

	"github.com/he2plus/he2plus-lib-sub001/internal/catalog"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
	"github.com/he2plus/he2plus-lib-sub001/internal/resolver"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtinCatalog() *catalog.Catalog {
	return catalog.New(zerolog.Nop(), Source())
}

func TestBuiltinProfilesLoadCleanly(t *testing.T) {
	c := builtinCatalog()

	assert.Empty(t, c.Failures())
	assert.Equal(t, 15, c.Len())
	assert.Equal(t, []string{
		model.CategoryLanguages,
		model.CategoryWeb,
		model.CategoryWeb3,
		model.CategoryData,
		model.CategoryMobile,
		model.CategoryDevOps,
	}, c.Categories())
}

func TestBuiltinDependenciesAreKnown(t *testing.T) {
	c := builtinCatalog()

	for _, p := range c.All() {
		for _, dep := range p.Dependencies {
			assert.True(t, c.Has(dep), "%s depends on unknown profile %s", p.ID, dep)
		}
		for _, conflict := range p.Conflicts {
			assert.True(t, c.Has(conflict), "%s conflicts with unknown profile %s", p.ID, conflict)
		}
	}
}

func TestBuiltinProfilesResolve(t *testing.T) {
	c := builtinCatalog()
	r := resolver.New(c)

	for _, p := range c.All() {
		t.Run(p.ID, func(t *testing.T) {
			plan, err := r.InstallationPlan([]string{p.ID})
			require.NoError(t, err)
			require.NotEmpty(t, plan.OrderedInstallation)
			assert.Equal(t, p.ID, plan.OrderedInstallation[len(plan.OrderedInstallation)-1])
			assert.Positive(t, plan.Totals.DownloadMB)
		})
	}
}

func TestBuiltinPriorityIDsExist(t *testing.T) {
	c := builtinCatalog()
	for _, id := range resolver.DefaultPriority {
		assert.True(t, c.Has(id), "priority lists unknown profile %s", id)
	}
}

func TestBuiltinFullstackPlan(t *testing.T) {
	r := resolver.New(builtinCatalog())

	order, err := r.Resolve([]string{"web-fullstack"})
	require.NoError(t, err)
	assert.Equal(t, []string{"nodejs", "web-frontend", "python", "docker", "web-fullstack"}, order)
}

func TestBuiltinDockerPodmanConflict(t *testing.T) {
	r := resolver.New(builtinCatalog())

	res := r.Validate([]string{"docker", "podman"})
	assert.False(t, res.Valid)
	assert.Contains(t, res.Issues, "Incompatible profiles: docker and podman")
}

func TestConstructorsReturnFreshProfiles(t *testing.T) {
	a, err := languages[0]()
	require.NoError(t, err)
	b, err := languages[0]()
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, a.ID, b.ID)
}

func TestSourceUnknownCategory(t *testing.T) {
	_, err := Source().Definitions("nope")
	assert.Error(t, err)
}
