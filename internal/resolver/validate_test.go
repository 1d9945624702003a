package resolver

import (
	"testing"

	"github.com/he2plus/he2plus-lib-sub001/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUnknownProfiles(t *testing.T) {
	r := newResolver(newProfile("a", 1))

	res := r.Validate([]string{"missing-id"})
	assert.False(t, res.Valid)
	require.Len(t, res.Issues, 1)
	assert.Contains(t, res.Issues[0], "Unknown profiles")
	assert.Contains(t, res.Issues[0], "missing-id")

	res = r.Validate([]string{"x", "a", "y", "x"})
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "Unknown profiles: x, y", res.Issues[0])
}

func TestValidateConflictsReportedOncePerPair(t *testing.T) {
	docker := newProfile("docker", 1)
	docker.Conflicts = []string{"podman"}
	podman := newProfile("podman", 1)
	podman.Conflicts = []string{"docker"}
	r := newResolver(docker, podman, newProfile("python", 1))

	res := r.Validate([]string{"docker", "python", "podman"})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Incompatible profiles: docker and podman"}, res.Issues)
}

func TestValidateCycleIsAnIssue(t *testing.T) {
	r := newResolver(newProfile("A", 1, "B"), newProfile("B", 1, "A"))

	res := r.Validate([]string{"A"})
	assert.False(t, res.Valid)
	require.Len(t, res.Issues, 1)
	assert.Contains(t, res.Issues[0], "circular dependency")
}

func TestValidateResourceWarnings(t *testing.T) {
	heavy := newProfile("heavy", 20)
	heavy.Requirements.DiskGB = 60
	heavier := newProfile("heavier", 16)
	heavier.Requirements.DiskGB = 50
	r := newResolver(heavy, heavier, newProfile("light", 1))

	res := r.Validate([]string{"heavy", "heavier"})
	assert.True(t, res.Valid, "warnings never invalidate")
	assert.Empty(t, res.Issues)
	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], "High RAM requirement")
	assert.Contains(t, res.Warnings[1], "High disk requirement")

	res = r.Validate([]string{"heavy", "light"})
	assert.True(t, res.Valid)
	assert.Empty(t, res.Warnings)
}

func TestValidateSumsRequestedProfilesOnly(t *testing.T) {
	base := newProfile("base", 30)
	top := newProfile("top", 4, "base")
	r := newResolver(base, top)

	res := r.Validate([]string{"top"})
	assert.True(t, res.Valid)
	assert.Empty(t, res.Warnings, "transitive dependencies are not summed")

	res = r.Validate([]string{"top", "base"})
	assert.Len(t, res.Warnings, 1)
}

func TestValidateCombinesIssues(t *testing.T) {
	docker := newProfile("docker", 1)
	docker.Conflicts = []string{"podman"}
	loop := newProfile("loop", 40, "loop")
	r := newResolver(docker, newProfile("podman", 1), loop)

	res := r.Validate([]string{"ghost", "docker", "podman", "loop"})
	assert.False(t, res.Valid)
	require.Len(t, res.Issues, 3)
	assert.Contains(t, res.Issues[0], "Unknown profiles: ghost")
	assert.Contains(t, res.Issues[1], "docker and podman")
	assert.Contains(t, res.Issues[2], "circular dependency detected at profile loop")
	assert.Len(t, res.Warnings, 1)
}

func TestValidateEmpty(t *testing.T) {
	r := newResolver(newProfile("a", 1))

	res := r.Validate(nil)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Issues)
	assert.Empty(t, res.Warnings)
}

func TestValidateUsesSymmetricPredicate(t *testing.T) {
	picky := newProfile("picky", 1)
	picky.Compatible = func(self, other *model.Profile) bool { return other.ID != "loud" }
	r := newResolver(picky, newProfile("loud", 1))

	assert.False(t, r.Validate([]string{"loud", "picky"}).Valid)
	assert.False(t, r.Validate([]string{"picky", "loud"}).Valid)
}
