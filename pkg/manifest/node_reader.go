package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// NodeReader parses package.json, enriched from package-lock.json when one
// is present. The dependency order is the declaration order in package.json,
// which encoding/json map decoding would destroy, so the dependencies object
// is walked token by token instead.
type NodeReader struct{}

func (r *NodeReader) Ecosystem() Ecosystem { return EcosystemNode }

type nodeLockEntry struct {
	Version string `json:"version"`
	License string `json:"license"`
}

type nodeLockfile struct {
	// npm lockfile v2/v3
	Packages map[string]nodeLockEntry `json:"packages"`
	// npm lockfile v1
	Dependencies map[string]nodeLockEntry `json:"dependencies"`
}

func (r *NodeReader) Read(target string) ([]Dependency, error) {
	path := filepath.Join(target, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrManifestNotFound
		}
		return nil, err
	}

	names, versions, err := parsePackageJSON(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	lock, err := readNodeLockfile(target)
	if err != nil {
		return nil, err
	}

	deps := make([]Dependency, 0, len(names))
	for _, name := range names {
		dep := Dependency{
			Name:      name,
			Version:   versions[name],
			Ecosystem: EcosystemNode,
		}
		if lock != nil {
			if entry, ok := lockLookup(lock, name); ok {
				if entry.Version != "" {
					dep.Version = entry.Version
				}
				dep.DeclaredLicense = entry.License
			}
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

// parsePackageJSON extracts dependency names in declaration order along with
// their version ranges from the dependencies and devDependencies objects.
func parsePackageJSON(data []byte) ([]string, map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("package.json root must be an object")
	}

	var names []string
	versions := make(map[string]string)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, _ := keyTok.(string)

		switch key {
		case "dependencies", "devDependencies":
			entries, err := decodeOrderedObject(dec)
			if err != nil {
				return nil, nil, err
			}
			for _, e := range entries {
				if _, seen := versions[e.key]; seen {
					continue
				}
				names = append(names, e.key)
				versions[e.key] = e.value
			}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, nil, err
			}
		}
	}

	return names, versions, nil
}

type orderedEntry struct {
	key   string
	value string
}

func decodeOrderedObject(dec *json.Decoder) ([]orderedEntry, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var entries []orderedEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		var value string
		// Version ranges are strings; anything else is kept empty
		_ = json.Unmarshal(raw, &value)
		entries = append(entries, orderedEntry{key: key, value: value})
	}

	// consume closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

func readNodeLockfile(target string) (*nodeLockfile, error) {
	path := filepath.Join(target, "package-lock.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var lock nodeLockfile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &lock, nil
}

func lockLookup(lock *nodeLockfile, name string) (nodeLockEntry, bool) {
	if entry, ok := lock.Packages["node_modules/"+name]; ok {
		return entry, true
	}
	if entry, ok := lock.Dependencies[name]; ok {
		return entry, true
	}
	return nodeLockEntry{}, false
}
