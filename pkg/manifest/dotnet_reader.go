package manifest

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/beevik/etree"
)

// DotnetReader parses PackageReference items out of *.csproj files. Multiple
// project files are read in lexical order; within a file, document order.
type DotnetReader struct{}

func (r *DotnetReader) Ecosystem() Ecosystem { return EcosystemDotnet }

func (r *DotnetReader) Read(target string) ([]Dependency, error) {
	files, err := filepath.Glob(filepath.Join(target, "*.csproj"))
	if err != nil || len(files) == 0 {
		return nil, ErrManifestNotFound
	}
	sort.Strings(files)

	var deps []Dependency
	seen := make(map[string]bool)

	for _, file := range files {
		doc := etree.NewDocument()
		if err := doc.ReadFromFile(file); err != nil {
			return nil, &ParseError{Path: file, Err: err}
		}
		root := doc.Root()
		if root == nil || root.Tag != "Project" {
			return nil, &ParseError{Path: file, Err: fmt.Errorf("missing <Project> root element")}
		}

		for _, ref := range root.FindElements("//PackageReference") {
			name := ref.SelectAttrValue("Include", "")
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true

			version := ref.SelectAttrValue("Version", "")
			if version == "" {
				// Version may also be a child element
				if el := ref.SelectElement("Version"); el != nil {
					version = el.Text()
				}
			}

			deps = append(deps, Dependency{
				Name:      name,
				Version:   version,
				Ecosystem: EcosystemDotnet,
				Metadata:  map[string]string{"project": filepath.Base(file)},
			})
		}
	}
	return deps, nil
}
