package license

import (
	"github.com/licenseguard/licenseguard/pkg/manifest"
)

// Resolver turns a Dependency into a license Record. Resolution order:
// the license declared in the manifest, then the bundled catalog, then the
// unknown sentinel. Resolve never returns an error.
type Resolver struct {
	catalog *Catalog
}

// NewResolver creates a Resolver backed by the given catalog. A nil catalog
// skips catalog lookups.
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve determines the license record for one dependency
func (r *Resolver) Resolve(dep manifest.Dependency) Record {
	if dep.DeclaredLicense != "" {
		if id := Identify(dep.DeclaredLicense); id != "" {
			return NewRecord(id)
		}
		// Declared but unrecognized: keep the raw identifier so the report
		// shows what the manifest said.
		return Record{ID: dep.DeclaredLicense, Category: CategoryUnknown}
	}

	if r.catalog != nil {
		if id, ok := r.catalog.Lookup(string(dep.Ecosystem), dep.Name); ok {
			return NewRecord(id)
		}
	}

	return Unknown()
}
