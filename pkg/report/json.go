package report

import (
	"encoding/json"
	"io"
)

// JSONFormatter emits the report document as indented JSON
type JSONFormatter struct{}

func (f *JSONFormatter) Render(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
