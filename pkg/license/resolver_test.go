package license

import (
	"testing"

	"github.com/licenseguard/licenseguard/pkg/manifest"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := LoadCatalog([]byte(`version: v1
packages:
  - name: lodash
    ecosystem: node
    license: MIT
  - name: mysqlclient
    ecosystem: python
    license: GPL-2.0
  - name: readline
    license: GPL-3.0
`))
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	return catalog
}

func TestResolveDeclaredLicenseWins(t *testing.T) {
	r := NewResolver(testCatalog(t))

	rec := r.Resolve(manifest.Dependency{
		Name:            "lodash",
		Ecosystem:       manifest.EcosystemNode,
		DeclaredLicense: "Apache License 2.0",
	})
	if rec.ID != "Apache-2.0" {
		t.Errorf("declared license should win over catalog, got %q", rec.ID)
	}
	if rec.Category != CategoryPermissive {
		t.Errorf("category = %q", rec.Category)
	}
}

func TestResolveCatalogFallback(t *testing.T) {
	r := NewResolver(testCatalog(t))

	rec := r.Resolve(manifest.Dependency{Name: "lodash", Ecosystem: manifest.EcosystemNode})
	if rec.ID != "MIT" {
		t.Errorf("catalog lookup failed, got %q", rec.ID)
	}

	// Name-only entries apply regardless of ecosystem
	rec = r.Resolve(manifest.Dependency{Name: "readline", Ecosystem: manifest.EcosystemRust})
	if rec.ID != "GPL-3.0" {
		t.Errorf("name-only catalog entry not applied, got %q", rec.ID)
	}
}

func TestResolveUnknownIsNotAnError(t *testing.T) {
	r := NewResolver(testCatalog(t))

	rec := r.Resolve(manifest.Dependency{Name: "never-heard-of-it", Ecosystem: manifest.EcosystemGo})
	if rec.ID != UnknownID {
		t.Errorf("unresolvable dependency should yield the unknown sentinel, got %q", rec.ID)
	}
	if rec.Category != CategoryUnknown {
		t.Errorf("category = %q", rec.Category)
	}
}

func TestResolveDeclaredButUnrecognized(t *testing.T) {
	r := NewResolver(nil)

	rec := r.Resolve(manifest.Dependency{
		Name:            "weird",
		DeclaredLicense: "Custom In-House License v7",
	})
	if rec.ID != "Custom In-House License v7" {
		t.Errorf("raw declared identifier should be preserved, got %q", rec.ID)
	}
	if rec.Category != CategoryUnknown {
		t.Errorf("category = %q", rec.Category)
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := NewResolver(testCatalog(t))
	dep := manifest.Dependency{Name: "mysqlclient", Ecosystem: manifest.EcosystemPython}

	first := r.Resolve(dep)
	for i := 0; i < 5; i++ {
		if got := r.Resolve(dep); got != first {
			t.Fatalf("Resolve is not deterministic: %+v vs %+v", got, first)
		}
	}
	if first.ID != "GPL-2.0" || first.Category != CategoryStrongCopyleft {
		t.Errorf("record = %+v", first)
	}
}

func TestBundledCatalogLoads(t *testing.T) {
	catalog, err := Bundled()
	if err != nil {
		t.Fatalf("Bundled() error = %v", err)
	}
	if catalog.Len() == 0 {
		t.Fatal("bundled catalog should not be empty")
	}
	if id, ok := catalog.Lookup("node", "lodash"); !ok || id != "MIT" {
		t.Errorf("bundled lookup lodash = %q, %v", id, ok)
	}
}
