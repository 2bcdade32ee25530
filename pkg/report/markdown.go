package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aymerick/raymond"

	"github.com/licenseguard/licenseguard/internal/assets"
)

// MarkdownFormatter renders the report through the bundled handlebars
// template. The report is round-tripped through JSON so the template can use
// the same lowercase field paths as the JSON output.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Render(w io.Writer, r *Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to prepare template context: %w", err)
	}
	var ctx map[string]interface{}
	if err := json.Unmarshal(data, &ctx); err != nil {
		return fmt.Errorf("failed to prepare template context: %w", err)
	}

	// The template references provenance fields at the top level
	if r.Provenance != nil {
		ctx["branch"] = r.Provenance.Branch
		ctx["commit"] = shortCommit(r.Provenance.Commit)
	}
	ctx["generated"] = r.Generated.Format("2006-01-02 15:04:05 UTC")

	out, err := raymond.Render(assets.MarkdownTemplate(), ctx)
	if err != nil {
		return fmt.Errorf("failed to render markdown report: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
