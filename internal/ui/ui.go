package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA8A04"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	boldStyle     = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	headingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
)

// FormatError returns a styled multi-line error message.
func FormatError(title, detail, suggestion string) string {
	out := errorStyle.Render("Error: "+title) + "\n"
	if detail != "" {
		out += "  " + detail + "\n"
	}
	if suggestion != "" {
		out += "  " + hintStyle.Render("Hint: "+suggestion) + "\n"
	}
	return out
}

// Heading prints a section title.
func Heading(w io.Writer, title string) {
	fmt.Fprintln(w, headingStyle.Render(title))
}

// ProfileLine prints one catalog entry: id, name and a dim description.
func ProfileLine(w io.Writer, id, name, description string) {
	line := fmt.Sprintf("  %-22s %s", boldStyle.Render(id), name)
	if description != "" {
		line += " " + dimStyle.Render("- "+description)
	}
	fmt.Fprintln(w, line)
}

// CategoryLine prints a category with its profile count.
func CategoryLine(w io.Writer, category string, count int) {
	fmt.Fprintf(w, "  %s %s\n", categoryStyle.Render(category), dimStyle.Render(fmt.Sprintf("(%d)", count)))
}

// KeyValue prints an aligned "key: value" pair.
func KeyValue(w io.Writer, key, value string) {
	fmt.Fprintf(w, "  %-14s %s\n", dimStyle.Render(key+":"), value)
}

// List joins items for inline display, or "none" when empty.
func List(items []string) string {
	if len(items) == 0 {
		return dimStyle.Render("none")
	}
	return strings.Join(items, ", ")
}

// Success prints a green success message.
func Success(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(msg))
}

// Warn prints a yellow warning message.
func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render("Warning: "+msg))
}

// Bold renders text in bold.
func Bold(s string) string {
	return boldStyle.Render(s)
}

// Hint renders text in dim italic.
func Hint(s string) string {
	return hintStyle.Render(s)
}

// ValidationOK prints a green check for a passing check.
func ValidationOK(w io.Writer, field, detail string) {
	fmt.Fprintf(w, "  %s %s: %s\n", successStyle.Render("OK "), field, detail)
}

// ValidationWarn prints a yellow marker for a warning.
func ValidationWarn(w io.Writer, message string) {
	fmt.Fprintf(w, "  %s %s\n", warnStyle.Render("WRN"), message)
}

// ValidationErr prints a red error for a failed check.
func ValidationErr(w io.Writer, message, suggestion string) {
	fmt.Fprintf(w, "  %s %s\n", errorStyle.Render("ERR"), message)
	if suggestion != "" {
		fmt.Fprintf(w, "      %s\n", hintStyle.Render("Hint: "+suggestion))
	}
}
