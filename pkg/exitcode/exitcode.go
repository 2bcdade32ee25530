// Package exitcode provides standardized exit codes for licenseguard
package exitcode

// Exit codes for the licenseguard CLI. A successful scan exits zero even
// when it reports flagged dependencies; the report carries the findings.
const (
	Success           = 0
	GeneralError      = 1
	ConfigError       = 2
	InvalidArgument   = 3
	ManifestNotFound  = 4
	ManifestParseFail = 5
	UnsupportedFormat = 6
)

// String returns a human-readable description of the exit code
func String(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case ConfigError:
		return "Configuration error"
	case InvalidArgument:
		return "Invalid argument"
	case ManifestNotFound:
		return "No recognized manifest found"
	case ManifestParseFail:
		return "Manifest parse error"
	case UnsupportedFormat:
		return "Unsupported output format"
	default:
		return "Unknown error"
	}
}
