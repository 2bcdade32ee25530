package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextFormatter renders an aligned plain-text table. Column widths are
// computed with runewidth so package names with wide runes stay aligned.
type TextFormatter struct{}

var textHeader = []string{"PACKAGE", "VERSION", "LICENSE", "CATEGORY", "STATUS"}

func (f *TextFormatter) Render(w io.Writer, r *Report) error {
	fmt.Fprintf(w, "License Compliance Report: %s (%s)\n", r.Project, r.Ecosystem)
	if len(r.Manifests) > 0 {
		fmt.Fprintf(w, "Manifests: %s\n", strings.Join(r.Manifests, ", "))
	}
	if r.Provenance != nil {
		dirty := ""
		if r.Provenance.Dirty {
			dirty = ", dirty"
		}
		fmt.Fprintf(w, "Git: %s @ %s%s\n", r.Provenance.Branch, shortCommit(r.Provenance.Commit), dirty)
	}
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		rows = append(rows, []string{
			res.Dependency.Name,
			res.Dependency.Version,
			res.License.ID,
			string(res.License.Category),
			string(res.Status),
		})
	}

	widths := make([]int, len(textHeader))
	for i, h := range textHeader {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = runewidth.FillRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	writeRow(textHeader)
	for _, row := range rows {
		writeRow(row)
	}

	if len(r.Issues) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Issues:")
		for _, issue := range r.Issues {
			fmt.Fprintf(w, "  [%s] %s: %s\n", issue.Severity, issue.Type, issue.Message)
		}
	}

	fmt.Fprintln(w)
	_, err := fmt.Fprintf(w, "%d dependencies: %d ok, %d flagged, %d unknown\n",
		r.Summary.Total, r.Summary.OK, r.Summary.Flagged, r.Summary.Unknown)
	return err
}

func shortCommit(commit string) string {
	if len(commit) > 12 {
		return commit[:12]
	}
	return commit
}
