package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/licenseguard/licenseguard/pkg/manifest"
	"github.com/licenseguard/licenseguard/pkg/report"
)

type scanReport struct {
	Project   string   `json:"project"`
	Ecosystem string   `json:"ecosystem"`
	Manifests []string `json:"manifests"`
	Results   []struct {
		Dependency struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"dependency"`
		License struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"license"`
		Status string `json:"status"`
	} `json:"results"`
	Summary struct {
		Total   int `json:"total"`
		OK      int `json:"ok"`
		Flagged int `json:"flagged"`
		Unknown int `json:"unknown"`
	} `json:"summary"`
}

// nodeProject writes a package.json whose dependencies resolve to one ok
// (lodash, MIT via the bundled catalog), one flagged (readline, GPL-3.0
// fallback entry), and one unknown package.
func nodeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	manifestJSON := `{
  "name": "demo",
  "version": "1.0.0",
  "dependencies": {
    "lodash": "^4.17.21",
    "readline": "^1.3.0"
  },
  "devDependencies": {
    "mystery-package": "1.0.0"
  }
}`
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifestJSON), 0600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestScanJSONReport(t *testing.T) {
	dir := nodeProject(t)

	out, err := execute(t, "scan", dir, "--output_format", "json")
	if err != nil {
		t.Fatalf("scan failed: %v\noutput: %s", err, out)
	}

	var rep scanReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	if rep.Ecosystem != "node" {
		t.Errorf("ecosystem = %q, want node", rep.Ecosystem)
	}
	if len(rep.Manifests) != 1 || rep.Manifests[0] != "package.json" {
		t.Errorf("manifests = %v, want [package.json]", rep.Manifests)
	}
	if len(rep.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(rep.Results))
	}

	// Declaration order is preserved: dependencies before devDependencies.
	wantOrder := []string{"lodash", "readline", "mystery-package"}
	wantStatus := []string{"ok", "flagged", "unknown"}
	for i, r := range rep.Results {
		if r.Dependency.Name != wantOrder[i] {
			t.Errorf("results[%d].name = %q, want %q", i, r.Dependency.Name, wantOrder[i])
		}
		if r.Status != wantStatus[i] {
			t.Errorf("results[%d] (%s) status = %q, want %q", i, r.Dependency.Name, r.Status, wantStatus[i])
		}
	}

	if rep.Summary.Total != 3 || rep.Summary.OK != 1 || rep.Summary.Flagged != 1 || rep.Summary.Unknown != 1 {
		t.Errorf("summary = %+v", rep.Summary)
	}
}

func TestScanTextOneRowPerDependency(t *testing.T) {
	dir := nodeProject(t)

	out, err := execute(t, "scan", dir)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	for _, name := range []string{"lodash", "readline", "mystery-package"} {
		if got := strings.Count(out, name); got != 1 {
			t.Errorf("%q appears %d times in text report, want 1", name, got)
		}
	}
	if !strings.Contains(out, "3 dependencies") {
		t.Errorf("summary line missing:\n%s", out)
	}
	if !strings.Contains(out, "Manifests: package.json") {
		t.Errorf("manifest list missing from header:\n%s", out)
	}
}

func TestScanNoManifest(t *testing.T) {
	_, err := execute(t, "scan", t.TempDir())
	if !errors.Is(err, manifest.ErrManifestNotFound) {
		t.Fatalf("err = %v, want ErrManifestNotFound", err)
	}
}

func TestScanMalformedManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "scan", dir)
	if !manifest.IsParseError(err) {
		t.Fatalf("err = %v, want ParseError", err)
	}
}

func TestScanUnsupportedFormat(t *testing.T) {
	_, err := execute(t, "scan", nodeProject(t), "--output_format", "xml")
	if !errors.Is(err, report.ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestScanMissingProjectPath(t *testing.T) {
	_, err := execute(t, "scan", filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, errInvalidArgument) {
		t.Fatalf("err = %v, want errInvalidArgument", err)
	}
}

func TestScanViolationsExitZeroByDefault(t *testing.T) {
	// readline is flagged, but a completed scan is a success.
	if _, err := execute(t, "scan", nodeProject(t)); err != nil {
		t.Fatalf("scan with violations should succeed, got %v", err)
	}
}

func TestScanFailOnFlagged(t *testing.T) {
	if _, err := execute(t, "scan", nodeProject(t), "--fail-on", "flagged"); err == nil {
		t.Fatal("expected error with --fail-on flagged")
	}
}

func TestScanFailOnInvalidValue(t *testing.T) {
	_, err := execute(t, "scan", nodeProject(t), "--fail-on", "sometimes")
	if !errors.Is(err, errInvalidArgument) {
		t.Fatalf("err = %v, want errInvalidArgument", err)
	}
}

func TestScanOutputFile(t *testing.T) {
	dir := nodeProject(t)
	outPath := filepath.Join(t.TempDir(), "report.json")

	if _, err := execute(t, "scan", dir, "-f", "json", "-o", outPath); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	var rep scanReport
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("report file is not valid JSON: %v", err)
	}
	if rep.Summary.Total != 3 {
		t.Errorf("total = %d, want 3", rep.Summary.Total)
	}
}

func TestScanCustomPolicy(t *testing.T) {
	dir := nodeProject(t)
	policyPath := filepath.Join(t.TempDir(), "policy.yaml")
	policyYAML := `version: v1
licenses:
  allowed_categories: [permissive, weak-copyleft]
  forbidden: [MIT]
`
	if err := os.WriteFile(policyPath, []byte(policyYAML), 0600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "scan", dir, "-f", "json", "--policy", policyPath)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	var rep scanReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatal(err)
	}
	// MIT is explicitly forbidden, so lodash flips to flagged.
	if rep.Results[0].Dependency.Name != "lodash" || rep.Results[0].Status != "flagged" {
		t.Errorf("lodash under MIT ban = %+v", rep.Results[0])
	}
}

func TestScanBadPolicyFile(t *testing.T) {
	dir := nodeProject(t)
	policyPath := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(policyPath, []byte("version: v2\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "scan", dir, "--policy", policyPath)
	if !errors.Is(err, errConfig) {
		t.Fatalf("err = %v, want errConfig", err)
	}
}
