package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/he2plus/he2plus-lib-sub001/internal/render"
	"github.com/he2plus/he2plus-lib-sub001/internal/resolver"
	"github.com/he2plus/he2plus-lib-sub001/internal/ui"
	"github.com/spf13/cobra"
)

var (
	planFormat string
	planOutput string
	planBrief  bool
)

var planCmd = &cobra.Command{
	Use:   "plan [profile...]",
	Short: "Build an ordered installation plan",
	Long: `Resolve the given profiles (or the profiles listed in he2plus.yml) and
their dependencies into an installation order with resource totals,
components and verification steps.

The yaml and json formats are the hand-off document for installers.`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&planFormat, "format", "f", "", "output format: text, yaml, json (default from config)")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "write the plan to a file instead of stdout")
	planCmd.Flags().BoolVar(&planBrief, "brief", false, "text format only: omit components and verification")
}

func runPlan(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "check he2plus.yml"))
		return err
	}

	ids := a.selection(args)
	if len(ids) == 0 {
		fmt.Fprint(os.Stderr, ui.FormatError("No profiles selected", "", "pass profile ids or run 'he2plus init'"))
		return errors.New("no profiles selected")
	}

	if unknown := unknownIDs(a, ids); len(unknown) > 0 {
		ui.Warn(os.Stderr, fmt.Sprintf("ignoring unknown profiles: %s", ui.List(unknown)))
	}

	plan, err := a.resolver.InstallationPlan(ids)
	if err != nil {
		var cycle *resolver.CircularDependencyError
		if errors.As(err, &cycle) {
			fmt.Fprint(os.Stderr, ui.FormatError("Cannot order installation", err.Error(), "fix the dependencies of "+cycle.Profile))
		}
		return err
	}

	format := planFormat
	if format == "" {
		format = a.cfg.Output
	}
	r, err := render.For(format)
	if err != nil {
		return err
	}
	if text, ok := r.(*render.TextRenderer); ok {
		text.Brief = planBrief
	}
	content, err := r.Render(plan)
	if err != nil {
		return err
	}

	if planOutput != "" {
		if err := os.WriteFile(planOutput, []byte(content), 0644); err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Failed to write plan", err.Error(), ""))
			return err
		}
		ui.Success(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s (%d profiles)", planOutput, len(plan.OrderedInstallation)))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), content)
	if format == "" || format == "text" {
		reportManagers(cmd, plan)
	}
	return nil
}

func unknownIDs(a *app, ids []string) []string {
	var out []string
	for _, id := range ids {
		if !a.catalog.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
