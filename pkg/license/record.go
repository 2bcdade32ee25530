// Package license resolves the declared license of a dependency into a
// normalized record. Resolution never fails: an undeterminable license is a
// valid, reportable outcome, not an error.
package license

// Category buckets licenses by their compliance obligations
type Category string

const (
	CategoryPermissive     Category = "permissive"
	CategoryWeakCopyleft   Category = "weak-copyleft"
	CategoryStrongCopyleft Category = "strong-copyleft"
	CategoryProprietary    Category = "proprietary"
	CategoryUnknown        Category = "unknown"
)

// UnknownID is the identifier used when no license could be determined
const UnknownID = "UNKNOWN"

// Record is a resolved license. Looked up, never mutated.
type Record struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	URL      string   `json:"url,omitempty"`
}

// Unknown returns the sentinel record for an undeterminable license
func Unknown() Record {
	return Record{ID: UnknownID, Category: CategoryUnknown}
}

// IsUnknown reports whether the record is the unknown sentinel
func (r Record) IsUnknown() bool {
	return r.ID == UnknownID || r.Category == CategoryUnknown && r.ID == ""
}

// NewRecord builds a Record for an SPDX identifier, deriving its category
// and canonical URL.
func NewRecord(id string) Record {
	return Record{
		ID:       id,
		Category: CategoryOf(id),
		URL:      URLFor(id),
	}
}
