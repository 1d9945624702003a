package resolver

import "fmt"

// CircularDependencyError reports a dependency cycle. Profile is the node
// that was reached again while it was still being visited.
type CircularDependencyError struct {
	Profile string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency detected at profile %s", e.Profile)
}
