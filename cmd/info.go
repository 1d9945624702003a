package cmd

import (
	"fmt"
	"os"

	"github.com/he2plus/he2plus-lib-sub001/internal/render"
	"github.com/he2plus/he2plus-lib-sub001/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var infoRaw bool

var infoCmd = &cobra.Command{
	Use:   "info <profile>",
	Short: "Show everything known about a profile",
	Long: `Show a profile's requirements, components, dependencies, conflicts,
installation order and the profiles it is compatible with.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&infoRaw, "raw", false, "print Markdown without terminal styling")
}

func runInfo(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "check he2plus.yml"))
		return err
	}

	id := args[0]
	info, ok := a.resolver.Info(id)
	if !ok {
		fmt.Fprint(os.Stderr, ui.FormatError("Unknown profile "+id, "", "run 'he2plus search "+id+"' to find similar profiles"))
		return fmt.Errorf("unknown profile %q", id)
	}

	md := render.InfoMarkdown(info)
	if infoRaw || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	styled, err := render.Markdown(md, 100)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styled)
	return nil
}
