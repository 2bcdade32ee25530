package manifest

import (
	"errors"
	"fmt"
)

// ErrManifestNotFound is returned when no recognized manifest exists under
// the project root.
var ErrManifestNotFound = errors.New("no recognized dependency manifest found")

// ParseError reports a malformed manifest. The scan is aborted; no partial
// report is produced.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
