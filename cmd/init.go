package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/he2plus/he2plus-lib-sub001/internal/ui"
	"github.com/he2plus/he2plus-lib-sub001/internal/wizard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a he2plus.yml config file interactively",
	Long: `Measure this machine, recommend the profiles that fit and write the
selected profiles and preferences to he2plus.yml through an interactive
wizard.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprint(os.Stderr, ui.FormatError("init needs an interactive terminal", "", "write he2plus.yml by hand instead"))
		return errors.New("not a terminal")
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "fix or remove he2plus.yml"))
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.Bold("Scanning this machine..."))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	detection := wizard.Detect(ctx, nil, a.cfg, a.resolver)

	answers, err := wizard.Run(detection, a.catalog.All())
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	if err := os.WriteFile(wizard.ConfigFileName, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ui.Success(out, fmt.Sprintf("Created %s", wizard.ConfigFileName))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Next step: %s\n", ui.Bold("he2plus plan"))
	fmt.Fprintf(out, "           %s\n", ui.Hint("or he2plus validate to check the selection"))

	return nil
}
