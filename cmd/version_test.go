package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "licenseguard ") {
		t.Errorf("output = %q", out)
	}
}

func TestVersionExtendedJSON(t *testing.T) {
	out, err := execute(t, "version", "--json", "--extended")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}

	var info struct {
		Version   string `json:"version"`
		GoVersion string `json:"goVersion"`
		Platform  string `json:"platform"`
	}
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if info.Version == "" || info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("info = %+v", info)
	}
}
