package policy

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/licenseguard/licenseguard/pkg/license"
)

// Status is the compliance outcome for one dependency
type Status string

const (
	StatusOK      Status = "ok"
	StatusFlagged Status = "flagged"
	StatusUnknown Status = "unknown"
)

// Evaluate classifies a resolved license against a policy. Pure and
// deterministic. Deny entries are checked first so that a license matching
// both an allow and a deny rule fails closed.
func Evaluate(rec license.Record, p Policy) Status {
	if denied(rec.ID, p) {
		return StatusFlagged
	}

	if rec.Category == license.CategoryUnknown {
		return StatusUnknown
	}

	for _, id := range p.Allowed {
		if id == rec.ID {
			return StatusOK
		}
	}
	for _, cat := range p.AllowedCategories {
		if cat == rec.Category {
			return StatusOK
		}
	}

	return StatusFlagged
}

func denied(id string, p Policy) bool {
	for _, f := range p.Forbidden {
		if f == id {
			return true
		}
	}
	for _, pattern := range p.ForbiddenPatterns {
		if ok, err := doublestar.Match(pattern, id); err == nil && ok {
			return true
		}
	}
	return false
}
