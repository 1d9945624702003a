package render

import (
	"fmt"
	"strings"

	"github.com/he2plus/he2plus-lib-sub001/internal/model"
	"github.com/he2plus/he2plus-lib-sub001/internal/resolver"
)

// TextRenderer writes a plan for humans.
type TextRenderer struct {
	// Brief omits components and verification steps.
	Brief bool
}

func (r *TextRenderer) Render(plan *resolver.Plan) (string, error) {
	var b strings.Builder

	if len(plan.OrderedInstallation) == 0 {
		b.WriteString("Nothing to install.\n")
		return b.String(), nil
	}

	b.WriteString("Installation order:\n")
	for i, id := range plan.OrderedInstallation {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, id)
	}

	b.WriteString("\nTotals:\n")
	fmt.Fprintf(&b, "  RAM:       %s\n", formatGB(plan.Totals.RAMGB))
	fmt.Fprintf(&b, "  Disk:      %s\n", formatGB(plan.Totals.DiskGB))
	fmt.Fprintf(&b, "  Download:  %s\n", formatMB(plan.Totals.DownloadMB))
	fmt.Fprintf(&b, "  Time:      %s\n", formatMinutes(plan.Totals.InstallMinutes))

	if r.Brief {
		return b.String(), nil
	}

	if len(plan.Components) > 0 {
		b.WriteString("\nComponents:\n")
		for _, c := range plan.Components {
			r.renderComponent(&b, c)
		}
	}

	if len(plan.Verification) > 0 {
		b.WriteString("\nVerification:\n")
		for _, v := range plan.Verification {
			fmt.Fprintf(&b, "  - %s: %s\n", v.Name, v.Command)
			switch {
			case v.ExpectedOutput != "":
				fmt.Fprintf(&b, "      expect: %s\n", v.ExpectedOutput)
			case v.ContainsText != "":
				fmt.Fprintf(&b, "      contains: %s\n", v.ContainsText)
			}
		}
	}

	return b.String(), nil
}

func (r *TextRenderer) renderComponent(b *strings.Builder, c model.Component) {
	label := c.Name
	if c.Version != "" {
		label += " " + c.Version
	}
	fmt.Fprintf(b, "  - %s (%s)\n", label, c.ID)

	methods := make([]string, 0, len(c.InstallMethods))
	for _, raw := range c.InstallMethods {
		m := model.ParseInstallMethod(raw)
		if m.Package != "" {
			methods = append(methods, fmt.Sprintf("%s install %s", m.Manager, m.Package))
		} else {
			methods = append(methods, m.Manager)
		}
	}
	if len(methods) > 0 {
		fmt.Fprintf(b, "      via: %s\n", strings.Join(methods, " | "))
	}
	fmt.Fprintf(b, "      size: %s, time: %s\n", formatMB(c.DownloadSizeMB), formatMinutes(c.InstallTimeMinutes))
}

func formatGB(v float64) string {
	return fmt.Sprintf("%.1f GB", v)
}

func formatMB(v float64) string {
	if v >= 1024 {
		return fmt.Sprintf("%.1f GB", v/1024)
	}
	return fmt.Sprintf("%.0f MB", v)
}

func formatMinutes(v float64) string {
	if v >= 60 {
		h := int(v) / 60
		m := int(v) % 60
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%.0f min", v)
}
