// Package definition loads profile definitions from YAML and TOML files.
//
// Files live under <dir>/<category>/<name>.yaml (or .yml, .toml); files
// placed directly in <dir> take the category they declare. Every file is
// checked against an embedded JSON schema before it becomes a profile.
package definition

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/he2plus/he2plus-lib-sub001/internal/model"
	"github.com/he2plus/he2plus-lib-sub001/internal/util"
	"github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed profile.schema.json
var schemaJSON []byte

var profileSchema = compileSchema()

func compileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("profile.schema.json", bytes.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("adding profile schema: %v", err))
	}
	return compiler.MustCompile("profile.schema.json")
}

// document is the on-disk shape of a profile definition.
type document struct {
	ID                string                   `json:"id"`
	Name              string                   `json:"name"`
	Description       string                   `json:"description"`
	Category          string                   `json:"category"`
	Requirements      model.Requirements       `json:"requirements"`
	Components        []model.Component        `json:"components"`
	VerificationSteps []model.VerificationStep `json:"verification_steps"`
	Dependencies      []string                 `json:"dependencies"`
	Conflicts         []string                 `json:"conflicts"`
	CompatibleWhen    string                   `json:"compatible_when"`
}

// Supported reports whether path has a definition file extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

// LoadFile reads and decodes a single definition file.
func LoadFile(path string) (*model.Profile, error) {
	//nolint:gosec // G304: definition paths come from configured profile directories
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	p, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode parses a definition in the format named by ext (".yaml", ".yml"
// or ".toml"), validates it against the schema and builds the profile.
func Decode(data []byte, ext string) (*model.Profile, error) {
	var raw any
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case ".toml":
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
		raw = m
	default:
		return nil, fmt.Errorf("unsupported definition format %q", ext)
	}

	// Round-trip through JSON so both formats reach the schema with the
	// same value types.
	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("normalizing definition: %w", err)
	}
	var instance any
	if err := json.Unmarshal(normalized, &instance); err != nil {
		return nil, fmt.Errorf("normalizing definition: %w", err)
	}
	if err := profileSchema.Validate(instance); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return nil, formatSchemaError(ve)
		}
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc document
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return nil, fmt.Errorf("decoding definition: %w", err)
	}
	return doc.profile()
}

func (d *document) profile() (*model.Profile, error) {
	id := d.ID
	if id == "" {
		id = util.NormalizeID(d.Name)
	}
	name := d.Name
	if name == "" {
		name = id
	}

	p := &model.Profile{
		ID:                id,
		Name:              name,
		Description:       d.Description,
		Category:          d.Category,
		Requirements:      d.Requirements,
		Components:        d.Components,
		VerificationSteps: d.VerificationSteps,
		Dependencies:      d.Dependencies,
		Conflicts:         d.Conflicts,
	}

	if d.CompatibleWhen != "" {
		fn, err := compileCompatibility(d.CompatibleWhen)
		if err != nil {
			return nil, err
		}
		p.Compatible = fn
	}
	return p, nil
}

// formatSchemaError flattens a schema validation tree into one error.
func formatSchemaError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("schema validation failed: %s", err.Message)
	}
	return fmt.Errorf("schema validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
