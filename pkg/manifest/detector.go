package manifest

import (
	"os"
	"path/filepath"
)

// Detect determines the ecosystem of the project at target by probing for
// well-known manifest files. Go wins over Node when both are present, which
// matches how mixed repos usually declare their primary toolchain.
func Detect(target string) (Ecosystem, bool, error) {
	if fi, err := os.Stat(target); err != nil {
		return "", false, err
	} else if !fi.IsDir() {
		return "", false, ErrManifestNotFound
	}

	if _, err := os.Stat(filepath.Join(target, "go.mod")); err == nil {
		return EcosystemGo, true, nil
	}

	// Node: package.json
	if _, err := os.Stat(filepath.Join(target, "package.json")); err == nil {
		return EcosystemNode, true, nil
	}

	// Python: pyproject.toml or requirements.txt
	if _, err := os.Stat(filepath.Join(target, "pyproject.toml")); err == nil {
		return EcosystemPython, true, nil
	}
	if _, err := os.Stat(filepath.Join(target, "requirements.txt")); err == nil {
		return EcosystemPython, true, nil
	}

	// Rust: Cargo.toml
	if _, err := os.Stat(filepath.Join(target, "Cargo.toml")); err == nil {
		return EcosystemRust, true, nil
	}

	// .NET: *.csproj
	files, _ := filepath.Glob(filepath.Join(target, "*.csproj"))
	if len(files) > 0 {
		return EcosystemDotnet, true, nil
	}

	return "", false, nil
}

// ManifestFiles returns the manifest file names a scan of target would read,
// relative to the project root.
func ManifestFiles(target string) ([]string, error) {
	eco, found, err := Detect(target)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrManifestNotFound
	}

	switch eco {
	case EcosystemGo:
		return []string{"go.mod"}, nil
	case EcosystemNode:
		manifests := []string{"package.json"}
		if _, err := os.Stat(filepath.Join(target, "package-lock.json")); err == nil {
			manifests = append(manifests, "package-lock.json")
		}
		return manifests, nil
	case EcosystemPython:
		var manifests []string
		if _, err := os.Stat(filepath.Join(target, "pyproject.toml")); err == nil {
			manifests = append(manifests, "pyproject.toml")
		}
		if _, err := os.Stat(filepath.Join(target, "requirements.txt")); err == nil {
			manifests = append(manifests, "requirements.txt")
		}
		return manifests, nil
	case EcosystemRust:
		manifests := []string{"Cargo.toml"}
		if _, err := os.Stat(filepath.Join(target, "Cargo.lock")); err == nil {
			manifests = append(manifests, "Cargo.lock")
		}
		return manifests, nil
	case EcosystemDotnet:
		files, err := filepath.Glob(filepath.Join(target, "*.csproj"))
		if err != nil || len(files) == 0 {
			return nil, ErrManifestNotFound
		}
		var manifests []string
		for _, f := range files {
			manifests = append(manifests, filepath.Base(f))
		}
		return manifests, nil
	default:
		return nil, ErrManifestNotFound
	}
}
