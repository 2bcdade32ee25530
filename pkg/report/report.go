// Package report renders classified scan results. Formatters preserve the
// input ordering and emit exactly one row per dependency.
package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/licenseguard/licenseguard/internal/gitctx"
	"github.com/licenseguard/licenseguard/pkg/license"
	"github.com/licenseguard/licenseguard/pkg/manifest"
	"github.com/licenseguard/licenseguard/pkg/policy"
)

// Result pairs one dependency with its resolved license and compliance
// status. Produced once per dependency per run.
type Result struct {
	Dependency manifest.Dependency `json:"dependency"`
	License    license.Record      `json:"license"`
	Status     policy.Status       `json:"status"`
}

// Issue is an advisory finding attached to the report, e.g. a policy engine
// denial. Issues never change a Result's status.
type Issue struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Summary aggregates result counts
type Summary struct {
	Total   int `json:"total"`
	OK      int `json:"ok"`
	Flagged int `json:"flagged"`
	Unknown int `json:"unknown"`
}

// Report is the full rendered document model
type Report struct {
	Project    string             `json:"project"`
	Ecosystem  manifest.Ecosystem `json:"ecosystem"`
	Manifests  []string           `json:"manifests,omitempty"`
	Generated  time.Time          `json:"generated"`
	Provenance *gitctx.Provenance `json:"provenance,omitempty"`
	Results    []Result           `json:"results"`
	Issues     []Issue            `json:"issues,omitempty"`
	Summary    Summary            `json:"summary"`
}

// New assembles a report and computes its summary
func New(project string, eco manifest.Ecosystem, results []Result, issues []Issue, prov *gitctx.Provenance) *Report {
	if results == nil {
		results = []Result{}
	}
	summary := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case policy.StatusOK:
			summary.OK++
		case policy.StatusFlagged:
			summary.Flagged++
		case policy.StatusUnknown:
			summary.Unknown++
		}
	}
	return &Report{
		Project:    project,
		Ecosystem:  eco,
		Generated:  time.Now().UTC(),
		Provenance: prov,
		Results:    results,
		Issues:     issues,
		Summary:    summary,
	}
}

// Format selects a report renderer
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ErrUnsupportedFormat is returned for format selectors outside the
// supported set.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ParseFormat validates a format selector
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatMarkdown:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w %q (expected text, json, or markdown)", ErrUnsupportedFormat, s)
	}
}

// Formatter renders a report to a writer
type Formatter interface {
	Render(w io.Writer, r *Report) error
}

// FormatterFor returns the Formatter for a format selector
func FormatterFor(f Format) Formatter {
	switch f {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TextFormatter{}
	}
}
