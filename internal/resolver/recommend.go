package resolver

import (
	"sort"

	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

// DefaultPriority is the order recommendations are presented in.
var DefaultPriority = []string{
	"python",
	"nodejs",
	"web-frontend",
	"go",
	"docker",
	"data-science",
	"web-fullstack",
	"rust",
	"web3-solidity",
	"kubernetes",
}

// Recommendations returns the profiles whose requirements fit capacity,
// ordered by Priority. Unlisted profiles keep catalog order after the
// listed ones.
func (r *Resolver) Recommendations(capacity model.Capacity) []*model.Profile {
	var out []*model.Profile
	for _, p := range r.catalog.All() {
		if capacity.Fits(p.Requirements) {
			out = append(out, p)
		}
	}

	rank := make(map[string]int, len(r.Priority))
	for i, id := range r.Priority {
		if _, dup := rank[id]; !dup {
			rank[id] = i
		}
	}
	rankOf := func(id string) int {
		if i, ok := rank[id]; ok {
			return i
		}
		return len(r.Priority)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return rankOf(out[i].ID) < rankOf(out[j].ID)
	})
	return out
}
