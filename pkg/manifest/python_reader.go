package manifest

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// PythonReader parses pyproject.toml (PEP 621) when present, falling back to
// requirements.txt. Both list dependencies in declaration order.
type PythonReader struct{}

func (r *PythonReader) Ecosystem() Ecosystem { return EcosystemPython }

type pyproject struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

func (r *PythonReader) Read(target string) ([]Dependency, error) {
	pyprojectPath := filepath.Join(target, "pyproject.toml")
	if data, err := os.ReadFile(pyprojectPath); err == nil {
		var proj pyproject
		if err := toml.Unmarshal(data, &proj); err != nil {
			return nil, &ParseError{Path: pyprojectPath, Err: err}
		}
		deps := make([]Dependency, 0, len(proj.Project.Dependencies))
		for _, spec := range proj.Project.Dependencies {
			name, version := parseRequirement(spec)
			if name == "" {
				continue
			}
			deps = append(deps, Dependency{
				Name:      name,
				Version:   version,
				Ecosystem: EcosystemPython,
			})
		}
		return deps, nil
	}

	reqPath := filepath.Join(target, "requirements.txt")
	f, err := os.Open(reqPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrManifestNotFound
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var deps []Dependency
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		name, version := parseRequirement(line)
		if name == "" {
			continue
		}
		deps = append(deps, Dependency{
			Name:      name,
			Version:   version,
			Ecosystem: EcosystemPython,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Path: reqPath, Err: err}
	}
	return deps, nil
}

// parseRequirement splits a PEP 508 requirement like "requests[socks]>=2.28,
// <3; python_version > '3.8'" into a package name and an exact version when
// one is pinned with ==.
func parseRequirement(spec string) (name, version string) {
	// Drop environment markers and inline comments
	if idx := strings.IndexAny(spec, ";#"); idx >= 0 {
		spec = spec[:idx]
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", ""
	}

	// Name ends at the first extras bracket, operator, or whitespace
	end := len(spec)
	for i, c := range spec {
		if c == '[' || c == '<' || c == '>' || c == '=' || c == '!' || c == '~' || c == ' ' || c == '(' {
			end = i
			break
		}
	}
	name = strings.TrimSpace(spec[:end])

	rest := spec[end:]
	if idx := strings.Index(rest, "=="); idx >= 0 {
		version = strings.TrimSpace(rest[idx+2:])
		if cut := strings.IndexAny(version, ", )"); cut >= 0 {
			version = version[:cut]
		}
	}
	return name, version
}
