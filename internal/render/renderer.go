package render

import (
	"fmt"

	"github.com/he2plus/he2plus-lib-sub001/internal/resolver"
)

// Renderer defines the interface for plan writers.
type Renderer interface {
	Render(plan *resolver.Plan) (string, error)
}

// For returns the renderer for an output format: text, yaml or json.
func For(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return &TextRenderer{}, nil
	case "yaml":
		return YAMLRenderer{}, nil
	case "json":
		return JSONRenderer{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
