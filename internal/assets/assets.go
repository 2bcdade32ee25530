// Package assets embeds the static data licenseguard ships with: the
// bundled license catalog, the policy file schema, and report templates.
package assets

import _ "embed"

//go:embed catalog/licenses.yaml
var licenseCatalog []byte

//go:embed schemas/policy-v1.json
var policySchema []byte

//go:embed templates/report.md.hbs
var markdownTemplate string

// LicenseCatalog returns the bundled package-name-to-license catalog (YAML).
func LicenseCatalog() []byte {
	return licenseCatalog
}

// PolicySchema returns the JSON Schema that policy files must satisfy.
func PolicySchema() []byte {
	return policySchema
}

// MarkdownTemplate returns the handlebars template for markdown reports.
func MarkdownTemplate() string {
	return markdownTemplate
}
