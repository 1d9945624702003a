package model

import "strings"

// InstallMethod is a parsed install method entry.
type InstallMethod struct {
	Manager string // e.g. brew, apt, pip
	Package string // optional package name override
}

// String returns the method in its "manager:package" form.
func (m InstallMethod) String() string {
	if m.Package == "" {
		return m.Manager
	}
	return m.Manager + ":" + m.Package
}

// ParseInstallMethod parses an entry like "brew" or "brew:python@3.12".
func ParseInstallMethod(s string) InstallMethod {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, ":"); idx != -1 {
		return InstallMethod{
			Manager: strings.ToLower(strings.TrimSpace(s[:idx])),
			Package: strings.TrimSpace(s[idx+1:]),
		}
	}
	return InstallMethod{Manager: strings.ToLower(s)}
}

// Managers returns the package managers of c in preference order.
func (c Component) Managers() []string {
	out := make([]string, 0, len(c.InstallMethods))
	for _, m := range c.InstallMethods {
		if mgr := ParseInstallMethod(m).Manager; mgr != "" {
			out = append(out, mgr)
		}
	}
	return out
}
