// Package manifest locates and parses a project's dependency declarations.
// Readers are read-only: they never touch the network or invoke a package
// manager, they only parse what the project already has on disk.
package manifest

// Ecosystem identifies the packaging ecosystem a manifest belongs to
type Ecosystem string

const (
	EcosystemGo     Ecosystem = "go"
	EcosystemNode   Ecosystem = "node"
	EcosystemPython Ecosystem = "python"
	EcosystemRust   Ecosystem = "rust"
	EcosystemDotnet Ecosystem = "dotnet"
)

// Dependency is a single declared dependency. Instances are created by a
// Reader and immutable afterwards.
type Dependency struct {
	Name            string            `json:"name"`
	Version         string            `json:"version,omitempty"`
	DeclaredLicense string            `json:"declared_license,omitempty"`
	Ecosystem       Ecosystem         `json:"ecosystem"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// Reader parses one ecosystem's manifest files under a project root into an
// ordered dependency list. Order follows the manifest's declaration order.
type Reader interface {
	Ecosystem() Ecosystem
	Read(target string) ([]Dependency, error)
}

// ReaderFor returns the Reader for an ecosystem, or nil when the ecosystem
// is not supported.
func ReaderFor(eco Ecosystem) Reader {
	switch eco {
	case EcosystemGo:
		return &GoReader{}
	case EcosystemNode:
		return &NodeReader{}
	case EcosystemPython:
		return &PythonReader{}
	case EcosystemRust:
		return &RustReader{}
	case EcosystemDotnet:
		return &DotnetReader{}
	default:
		return nil
	}
}

// Scan detects the project's ecosystem and reads its dependencies in one
// pass. Returns ErrManifestNotFound when no recognized manifest exists.
func Scan(target string) ([]Dependency, Ecosystem, error) {
	eco, found, err := Detect(target)
	if err != nil {
		return nil, "", err
	}
	if !found {
		return nil, "", ErrManifestNotFound
	}
	reader := ReaderFor(eco)
	deps, err := reader.Read(target)
	if err != nil {
		return nil, eco, err
	}
	return deps, eco, nil
}
