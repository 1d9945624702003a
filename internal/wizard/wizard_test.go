package wizard

import (
	"errors"
	"testing"

	"github.com/he2plus/he2plus-lib-sub001/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestProfileOptionsRecommendedFirst(t *testing.T) {
	profiles := []*model.Profile{
		{ID: "python", Name: "Python", Category: "languages", Requirements: model.Requirements{RAMGB: 4}},
		{ID: "docker", Name: "Docker", Category: "devops", Requirements: model.Requirements{RAMGB: 4}},
		{ID: "ml", Name: "ML", Category: "data", Requirements: model.Requirements{RAMGB: 16}},
	}

	options := ProfileOptions(profiles, []string{"docker", "python", "unknown"})

	var values, keys []string
	for _, o := range options {
		values = append(values, o.Value)
		keys = append(keys, o.Key)
	}
	assert.Equal(t, []string{"docker", "python", "ml"}, values)
	assert.Equal(t, "Docker (devops, 4 GB RAM) *", keys[0])
	assert.Equal(t, "ML (data, 16 GB RAM)", keys[2])
}

func TestSummary(t *testing.T) {
	detection := DetectionResult{
		Capacity:    model.Capacity{RAMTotalGB: 15.5, DiskFreeGB: 120, CPUCores: 8},
		ProbeErr:    errors.New("probing disk: not supported"),
		Recommended: []string{"python"},
		ProfileDirs: []string{"./profiles"},
	}

	out := summary(detection)
	assert.Contains(t, out, "15.5 GB RAM, 120.0 GB free disk, 8 CPU cores")
	assert.Contains(t, out, "probing disk")
	assert.Contains(t, out, "marked *")
	assert.Contains(t, out, "./profiles")
}
