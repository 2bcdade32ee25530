// Package policy loads compliance policies and classifies resolved licenses
// against them.
package policy

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/licenseguard/licenseguard/internal/assets"
	"github.com/licenseguard/licenseguard/pkg/license"
)

// Policy is the compliance rule set for a run. Loaded once, read-only.
type Policy struct {
	Version           string             `yaml:"version" json:"version"`
	AllowedCategories []license.Category `yaml:"allowed_categories" json:"allowed_categories"`
	Allowed           []string           `yaml:"allowed" json:"allowed,omitempty"`
	Forbidden         []string           `yaml:"forbidden" json:"forbidden,omitempty"`
	ForbiddenPatterns []string           `yaml:"forbidden_patterns" json:"forbidden_patterns,omitempty"`
}

type policyFile struct {
	Version  string `yaml:"version"`
	Licenses struct {
		AllowedCategories []string `yaml:"allowed_categories"`
		Allowed           []string `yaml:"allowed"`
		Forbidden         []string `yaml:"forbidden"`
		ForbiddenPatterns []string `yaml:"forbidden_patterns"`
	} `yaml:"licenses"`
}

// Default is the policy used when no policy file is given: permissive and
// weak-copyleft dependencies pass, everything else is flagged.
func Default() Policy {
	return Policy{
		Version: "v1",
		AllowedCategories: []license.Category{
			license.CategoryPermissive,
			license.CategoryWeakCopyleft,
		},
	}
}

// Load reads and validates a policy file. The document is checked against
// the bundled JSON Schema before being decoded, so structural mistakes fail
// fast with a pointer to the offending field.
func Load(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("policy file not accessible: %w", err)
	}
	return Parse(data)
}

// Parse validates and decodes a policy document
func Parse(data []byte) (Policy, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Policy{}, fmt.Errorf("failed to parse policy: %w", err)
	}

	if err := validateSchema(raw); err != nil {
		return Policy{}, err
	}

	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Policy{}, fmt.Errorf("failed to decode policy: %w", err)
	}

	p := Policy{
		Version:           file.Version,
		Allowed:           file.Licenses.Allowed,
		Forbidden:         file.Licenses.Forbidden,
		ForbiddenPatterns: file.Licenses.ForbiddenPatterns,
	}
	for _, cat := range file.Licenses.AllowedCategories {
		p.AllowedCategories = append(p.AllowedCategories, license.Category(cat))
	}
	if len(p.AllowedCategories) == 0 {
		p.AllowedCategories = Default().AllowedCategories
	}
	return p, nil
}

func validateSchema(doc map[string]interface{}) error {
	schemaLoader := gojsonschema.NewBytesLoader(assets.PolicySchema())
	docLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("policy schema validation failed: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("invalid policy: %s", strings.Join(msgs, "; "))
	}
	return nil
}
