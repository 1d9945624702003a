package resolver

import (
	"fmt"
	"strings"
)

// Resource totals above these thresholds produce warnings.
const (
	RAMWarningGB  = 32
	DiskWarningGB = 100
)

// ValidationResult is the outcome of Validate. Warnings never affect Valid.
type ValidationResult struct {
	Valid    bool     `yaml:"valid" json:"valid"`
	Issues   []string `yaml:"issues" json:"issues"`
	Warnings []string `yaml:"warnings" json:"warnings"`
}

// Validate checks a candidate installation set. It never fails; unknown
// ids, conflicts and cycles are reported as issues.
func (r *Resolver) Validate(ids []string) ValidationResult {
	res := ValidationResult{Issues: []string{}, Warnings: []string{}}

	seen := make(map[string]bool, len(ids))
	var unknown []string
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := r.catalog.Get(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		res.Issues = append(res.Issues, "Unknown profiles: "+strings.Join(unknown, ", "))
	}

	known := r.known(ids)
	for i := 0; i < len(known); i++ {
		for j := i + 1; j < len(known); j++ {
			if !known[i].IsCompatibleWith(known[j]) {
				res.Issues = append(res.Issues,
					fmt.Sprintf("Incompatible profiles: %s and %s", known[i].ID, known[j].ID))
			}
		}
	}

	if _, err := r.Resolve(ids); err != nil {
		res.Issues = append(res.Issues, err.Error())
	}

	var ram, disk float64
	for _, p := range known {
		ram += p.Requirements.RAMGB
		disk += p.Requirements.DiskGB
	}
	if ram > RAMWarningGB {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("High RAM requirement: %.1f GB exceeds %d GB", ram, RAMWarningGB))
	}
	if disk > DiskWarningGB {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("High disk requirement: %.1f GB exceeds %d GB", disk, DiskWarningGB))
	}

	res.Valid = len(res.Issues) == 0
	return res
}
