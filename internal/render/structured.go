package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/he2plus/he2plus-lib-sub001/internal/resolver"
	"gopkg.in/yaml.v3"
)

// YAMLRenderer writes the plan hand-off document as YAML.
type YAMLRenderer struct{}

func (YAMLRenderer) Render(plan *resolver.Plan) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return "", fmt.Errorf("encoding plan as yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding plan as yaml: %w", err)
	}
	return buf.String(), nil
}

// JSONRenderer writes the plan hand-off document as JSON.
type JSONRenderer struct {
	Indent string
}

func (r JSONRenderer) Render(plan *resolver.Plan) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", r.Indent)
	if err := enc.Encode(plan); err != nil {
		return "", fmt.Errorf("encoding plan as json: %w", err)
	}
	return buf.String(), nil
}
