package license

import (
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/licenseguard/licenseguard/internal/assets"
)

// CatalogEntry is one bundled package-to-license mapping
type CatalogEntry struct {
	Name      string `yaml:"name" json:"name"`
	Ecosystem string `yaml:"ecosystem,omitempty" json:"ecosystem,omitempty"`
	License   string `yaml:"license" json:"license"`
}

type catalogFile struct {
	Version  string         `yaml:"version"`
	Packages []CatalogEntry `yaml:"packages"`
}

// Catalog maps package names to SPDX identifiers. Entries scoped to an
// ecosystem win over name-only entries.
type Catalog struct {
	entries []CatalogEntry
	byKey   map[string]string
}

// LoadCatalog parses a catalog document
func LoadCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse license catalog: %w", err)
	}

	c := &Catalog{
		entries: file.Packages,
		byKey:   make(map[string]string, len(file.Packages)),
	}
	for _, entry := range file.Packages {
		c.byKey[catalogKey(entry.Ecosystem, entry.Name)] = entry.License
	}
	return c, nil
}

var (
	bundledOnce sync.Once
	bundled     *Catalog
	bundledErr  error
)

// Bundled returns the catalog shipped with the binary
func Bundled() (*Catalog, error) {
	bundledOnce.Do(func() {
		bundled, bundledErr = LoadCatalog(assets.LicenseCatalog())
	})
	return bundled, bundledErr
}

// Lookup finds the license identifier for a package. The ecosystem-scoped
// entry is preferred; a name-only entry is the fallback.
func (c *Catalog) Lookup(ecosystem, name string) (string, bool) {
	if id, ok := c.byKey[catalogKey(ecosystem, name)]; ok {
		return id, true
	}
	id, ok := c.byKey[catalogKey("", name)]
	return id, ok
}

// Entries returns all catalog entries sorted by ecosystem then name
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ecosystem != out[j].Ecosystem {
			return out[i].Ecosystem < out[j].Ecosystem
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

func catalogKey(ecosystem, name string) string {
	return ecosystem + "\x00" + name
}
