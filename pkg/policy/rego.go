package policy

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"
)

// RegoEngine evaluates a transpiled policy over scan results with embedded
// OPA. Its denials are advisory: they mirror the classifier's deny rules and
// surface as issues in the report, but classification itself stays with
// Evaluate.
type RegoEngine struct {
	module string
}

// NewRegoEngine transpiles the policy into a Rego module
func NewRegoEngine(p Policy) *RegoEngine {
	return &RegoEngine{module: transpileToRego(p)}
}

// Denials evaluates the policy over the given input and returns every deny
// message. The input must expose the scan results under a "results" key.
func (e *RegoEngine) Denials(ctx context.Context, input interface{}) ([]string, error) {
	if e.module == "" {
		return nil, nil
	}

	rs, err := rego.New(
		rego.Query("data.licenseguard.compliance.deny"),
		rego.Input(input),
		rego.Module("policy.rego", e.module),
	).Eval(ctx)
	if err != nil {
		return nil, fmt.Errorf("rego evaluation failed: %w", err)
	}

	var denials []string
	for _, result := range rs {
		for _, expr := range result.Expressions {
			values, ok := expr.Value.([]interface{})
			if !ok {
				continue
			}
			for _, v := range values {
				if msg, ok := v.(string); ok {
					denials = append(denials, msg)
				}
			}
		}
	}
	return denials, nil
}

// transpileToRego converts the deny rules of a policy into a Rego module
func transpileToRego(p Policy) string {
	if len(p.Forbidden) == 0 && len(p.ForbiddenPatterns) == 0 {
		return ""
	}

	var buf bytes.Buffer
	buf.WriteString("package licenseguard.compliance\n\n")

	if len(p.Forbidden) > 0 {
		buf.WriteString("deny contains msg if {\n")
		buf.WriteString("  result := input.results[_]\n")
		buf.WriteString("  forbidden := ")
		buf.WriteString(regoStringArray(p.Forbidden))
		buf.WriteString("\n")
		buf.WriteString("  forbidden[_] == result.license.id\n")
		buf.WriteString("  msg := sprintf(\"dependency %s uses forbidden license %s\", [result.dependency.name, result.license.id])\n")
		buf.WriteString("}\n\n")
	}

	if len(p.ForbiddenPatterns) > 0 {
		buf.WriteString("deny contains msg if {\n")
		buf.WriteString("  result := input.results[_]\n")
		buf.WriteString("  patterns := ")
		buf.WriteString(regoStringArray(p.ForbiddenPatterns))
		buf.WriteString("\n")
		buf.WriteString("  pattern := patterns[_]\n")
		buf.WriteString("  glob.match(pattern, [], result.license.id)\n")
		buf.WriteString("  msg := sprintf(\"dependency %s matches forbidden license pattern %s (%s)\", [result.dependency.name, pattern, result.license.id])\n")
		buf.WriteString("}\n\n")
	}

	return buf.String()
}

// regoStringArray renders a quoted Rego array, e.g. ["GPL-3.0", "MIT"]
func regoStringArray(items []string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%q", item))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
