package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/he2plus/he2plus-lib-sub001/internal/resolver"
)

// InfoMarkdown describes a profile as a Markdown document.
func InfoMarkdown(info *resolver.ProfileInfo) string {
	p := info.Profile
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "`%s` in **%s**\n\n", p.ID, p.Category)
	if p.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Description)
	}

	b.WriteString("## Requirements\n\n")
	b.WriteString("| RAM | Disk | CPU cores |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %s | %d |\n\n", formatGB(p.Requirements.RAMGB), formatGB(p.Requirements.DiskGB), p.Requirements.CPUCores)

	fmt.Fprintf(&b, "Estimated download %s, install time %s.\n\n",
		formatMB(p.EstimatedDownloadMB()), formatMinutes(p.EstimatedInstallMinutes()))

	if len(p.Components) > 0 {
		b.WriteString("## Components\n\n")
		b.WriteString("| Component | Version | Install via |\n|---|---|---|\n")
		for _, c := range p.Components {
			version := c.Version
			if version == "" {
				version = "-"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", c.Name, version, strings.Join(c.InstallMethods, ", "))
		}
		b.WriteString("\n")
	}

	writeList(&b, "Dependencies", info.Dependencies)
	writeList(&b, "Conflicts", info.Conflicts)

	b.WriteString("## Installation order\n\n")
	switch {
	case info.PlanErr != nil:
		fmt.Fprintf(&b, "Cannot be planned: %s\n\n", info.PlanErr)
	case info.Plan != nil:
		for i, id := range info.Plan.OrderedInstallation {
			fmt.Fprintf(&b, "%d. %s\n", i+1, id)
		}
		b.WriteString("\n")
	}

	writeList(&b, "Compatible with", info.Compatible)

	if len(p.VerificationSteps) > 0 {
		b.WriteString("## Verification\n\n")
		for _, v := range p.VerificationSteps {
			fmt.Fprintf(&b, "- **%s**: `%s`\n", v.Name, v.Command)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(items) == 0 {
		b.WriteString("_none_\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

// Markdown renders md for a terminal of the given width. Width 0 keeps
// glamour's default wrapping.
func Markdown(md string, width int) (string, error) {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
