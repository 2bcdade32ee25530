package manifest

import (
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/mod/modfile"
)

// GoReader parses go.mod require blocks
type GoReader struct{}

func (r *GoReader) Ecosystem() Ecosystem { return EcosystemGo }

func (r *GoReader) Read(target string) ([]Dependency, error) {
	path := filepath.Join(target, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrManifestNotFound
		}
		return nil, err
	}

	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	deps := make([]Dependency, 0, len(f.Require))
	for _, req := range f.Require {
		dep := Dependency{
			Name:      req.Mod.Path,
			Version:   req.Mod.Version,
			Ecosystem: EcosystemGo,
		}
		if req.Indirect {
			dep.Metadata = map[string]string{"indirect": strconv.FormatBool(true)}
		}
		deps = append(deps, dep)
	}
	return deps, nil
}
