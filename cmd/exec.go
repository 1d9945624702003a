package cmd

import (
	"fmt"
	"os/exec"

	"github.com/he2plus/he2plus-lib-sub001/internal/resolver"
	"github.com/he2plus/he2plus-lib-sub001/internal/ui"
	"github.com/spf13/cobra"
)

// findExecutable wraps exec.LookPath for testability.
var findExecutable = exec.LookPath

// managerAvailability splits the package managers a plan uses into those
// found on PATH and those missing, in first-use order.
func managerAvailability(plan *resolver.Plan) (found, missing []string) {
	seen := make(map[string]bool)
	for _, c := range plan.Components {
		for _, m := range c.Managers() {
			if seen[m] {
				continue
			}
			seen[m] = true
			if _, err := findExecutable(m); err == nil {
				found = append(found, m)
			} else {
				missing = append(missing, m)
			}
		}
	}
	return found, missing
}

func reportManagers(cmd *cobra.Command, plan *resolver.Plan) {
	found, missing := managerAvailability(plan)
	if len(found) == 0 && len(missing) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	ui.KeyValue(out, "on PATH", ui.List(found))
	ui.KeyValue(out, "not found", ui.List(missing))
}
