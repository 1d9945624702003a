package cmd

import (
	"fmt"
	"os"

	"github.com/he2plus/he2plus-lib-sub001/internal/model"
	"github.com/he2plus/he2plus-lib-sub001/internal/ui"
	"github.com/spf13/cobra"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the profiles in the catalog",
	Long: `List every known profile grouped by category, or only the profiles of
one category with --category.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the profile categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)

	listCmd.Flags().StringVar(&listCategory, "category", "", "only list profiles of this category")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "check he2plus.yml"))
		return err
	}
	out := cmd.OutOrStdout()

	categories := a.catalog.Categories()
	if listCategory != "" {
		if a.catalog.ByCategory(listCategory) == nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Unknown category "+listCategory, "", "run 'he2plus categories' to see the available ones"))
			return fmt.Errorf("unknown category %q", listCategory)
		}
		categories = []string{listCategory}
	}

	for i, category := range categories {
		if i > 0 {
			fmt.Fprintln(out)
		}
		ui.Heading(out, category)
		for _, p := range a.catalog.ByCategory(category) {
			ui.ProfileLine(out, p.ID, p.Name, p.Description)
		}
	}

	reportFailures(a)
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "check he2plus.yml"))
		return err
	}
	out := cmd.OutOrStdout()

	for _, category := range a.catalog.Categories() {
		ui.CategoryLine(out, category, len(a.catalog.ByCategory(category)))
	}
	return nil
}

// reportFailures tells the user about skipped definitions without failing
// the command; details are in the warn-level log.
func reportFailures(a *app) {
	if n := len(a.catalog.Failures()); n > 0 {
		ui.Warn(os.Stderr, fmt.Sprintf("%d profile definition(s) skipped, run 'he2plus validate' for details", n))
	}
}

func printProfiles(cmd *cobra.Command, profiles []*model.Profile) {
	out := cmd.OutOrStdout()
	for _, p := range profiles {
		ui.ProfileLine(out, p.ID, p.Name, p.Description)
	}
}
