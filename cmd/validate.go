package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/he2plus/he2plus-lib-sub001/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [profile...]",
	Short: "Check a profile selection and the profile definitions",
	Long: `Check that the given profiles (or the profiles listed in he2plus.yml)
exist, do not conflict, can be ordered and stay within sensible resource
totals. Profile definition files that could not be loaded are reported
too.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'he2plus init' to create a config file"))
		return err
	}
	out := cmd.OutOrStdout()

	failed := 0

	fmt.Fprintln(out, ui.Bold("Checking profile definitions..."))
	failures := a.catalog.Failures()
	if len(failures) == 0 {
		ui.ValidationOK(out, "definitions", fmt.Sprintf("%d profiles loaded", a.catalog.Len()))
	}
	for _, f := range failures {
		ui.ValidationErr(out, f.Error(), "")
		failed++
	}

	ids := a.selection(args)
	if len(ids) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Bold("Checking selection "+ui.List(ids)+"..."))

		res := a.resolver.Validate(ids)
		for _, issue := range res.Issues {
			ui.ValidationErr(out, issue, "")
			failed++
		}
		for _, warning := range res.Warnings {
			ui.ValidationWarn(out, warning)
		}
		if res.Valid {
			ui.ValidationOK(out, "selection", "profiles can be installed together")
		}
	}

	fmt.Fprintln(out)
	if failed == 0 {
		ui.Success(out, "All checks passed")
		return nil
	}
	fmt.Fprintf(out, "%d errors\n", failed)
	return errors.New("validation failed")
}
