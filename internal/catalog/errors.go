package catalog

import (
	"fmt"
	"strings"
)

// DiscoveryFailure records a definition that could not be registered.
type DiscoveryFailure struct {
	Source    string
	Category  string
	ProfileID string   // empty when construction failed before an id was known
	Issues    []string // self-validation problems
	Err       error    // construction or source error
}

func (e *DiscoveryFailure) Error() string {
	where := e.Source
	if e.Category != "" {
		where += "/" + e.Category
	}
	if e.ProfileID != "" {
		where += "/" + e.ProfileID
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", where, e.Err)
	}
	return fmt.Sprintf("%s: %s", where, strings.Join(e.Issues, "; "))
}

func (e *DiscoveryFailure) Unwrap() error {
	return e.Err
}
