package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		expected Ecosystem
		found    bool
	}{
		{"go project", map[string]string{"go.mod": "module example.com/x\n"}, EcosystemGo, true},
		{"node project", map[string]string{"package.json": "{}"}, EcosystemNode, true},
		{"python pyproject", map[string]string{"pyproject.toml": ""}, EcosystemPython, true},
		{"python requirements", map[string]string{"requirements.txt": ""}, EcosystemPython, true},
		{"rust project", map[string]string{"Cargo.toml": ""}, EcosystemRust, true},
		{"dotnet project", map[string]string{"app.csproj": "<Project/>"}, EcosystemDotnet, true},
		{"go wins over node", map[string]string{"go.mod": "module example.com/x\n", "package.json": "{}"}, EcosystemGo, true},
		{"empty directory", map[string]string{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}
			eco, found, err := Detect(dir)
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if found != tt.found {
				t.Fatalf("Detect() found = %v, want %v", found, tt.found)
			}
			if eco != tt.expected {
				t.Errorf("Detect() = %q, want %q", eco, tt.expected)
			}
		})
	}
}

func TestDetectMissingTarget(t *testing.T) {
	_, _, err := Detect(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing target")
	}
}

func TestScanNoManifest(t *testing.T) {
	_, _, err := Scan(t.TempDir())
	if err != ErrManifestNotFound {
		t.Fatalf("Scan() error = %v, want ErrManifestNotFound", err)
	}
}

func TestManifestFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", "{}")
	writeFile(t, dir, "package-lock.json", "{}")

	files, err := ManifestFiles(dir)
	if err != nil {
		t.Fatalf("ManifestFiles() error = %v", err)
	}
	if len(files) != 2 || files[0] != "package.json" || files[1] != "package-lock.json" {
		t.Errorf("ManifestFiles() = %v", files)
	}
}
