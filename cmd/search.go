package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/he2plus/he2plus-lib-sub001/internal/ui"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search profiles by id, name, description or category",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "check he2plus.yml"))
		return err
	}

	query := strings.Join(args, " ")
	results := a.catalog.Search(query)
	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles match %q.\n", query)
		return nil
	}

	printProfiles(cmd, results)
	return nil
}
