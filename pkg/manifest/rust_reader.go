package manifest

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// RustReader prefers Cargo.lock, whose [[package]] array preserves order and
// carries resolved versions. Without a lockfile it falls back to the
// [dependencies] table of Cargo.toml; TOML tables decode to unordered maps,
// so that path sorts by name to stay deterministic.
type RustReader struct{}

func (r *RustReader) Ecosystem() Ecosystem { return EcosystemRust }

type cargoLock struct {
	Package []struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Dependencies map[string]interface{} `toml:"dependencies"`
}

func (r *RustReader) Read(target string) ([]Dependency, error) {
	lockPath := filepath.Join(target, "Cargo.lock")
	if data, err := os.ReadFile(lockPath); err == nil {
		var lock cargoLock
		if err := toml.Unmarshal(data, &lock); err != nil {
			return nil, &ParseError{Path: lockPath, Err: err}
		}
		// Cargo.lock lists the workspace root crate itself; a project is not
		// its own dependency.
		rootCrate := rootCrateName(target)
		var deps []Dependency
		for _, pkg := range lock.Package {
			if rootCrate != "" && pkg.Name == rootCrate {
				continue
			}
			deps = append(deps, Dependency{
				Name:      pkg.Name,
				Version:   pkg.Version,
				Ecosystem: EcosystemRust,
			})
		}
		return deps, nil
	}

	manifestPath := filepath.Join(target, "Cargo.toml")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrManifestNotFound
		}
		return nil, err
	}

	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Path: manifestPath, Err: err}
	}

	names := make([]string, 0, len(m.Dependencies))
	for name := range m.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]Dependency, 0, len(names))
	for _, name := range names {
		deps = append(deps, Dependency{
			Name:      name,
			Version:   cargoVersion(m.Dependencies[name]),
			Ecosystem: EcosystemRust,
		})
	}
	return deps, nil
}

// rootCrateName reads the crate name from Cargo.toml. Best effort: a missing
// or unreadable manifest returns "" and no lockfile entry gets skipped.
func rootCrateName(target string) string {
	data, err := os.ReadFile(filepath.Join(target, "Cargo.toml"))
	if err != nil {
		return ""
	}
	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return ""
	}
	return m.Package.Name
}

// cargoVersion extracts the version requirement from either shorthand
// (serde = "1.0") or table (serde = { version = "1.0", features = [...] })
// dependency syntax.
func cargoVersion(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]interface{}:
		if ver, ok := v["version"].(string); ok {
			return ver
		}
	}
	return ""
}
