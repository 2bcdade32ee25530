package license

import "strings"

// Identify returns the SPDX identifier matching a declared license name or a
// fragment of license text, or "" when nothing matches.
// Order matters: more specific patterns are checked first.
func Identify(nameOrText string) string {
	normalized := strings.ToUpper(strings.TrimSpace(nameOrText))
	if normalized == "" {
		return ""
	}

	switch {
	case strings.Contains(normalized, "AGPL") || strings.Contains(normalized, "AFFERO"):
		return "AGPL-3.0"
	case strings.Contains(normalized, "BSD 3-CLAUSE") || strings.Contains(normalized, "BSD-3-CLAUSE"):
		return "BSD-3-Clause"
	case strings.Contains(normalized, "BSD 2-CLAUSE") || strings.Contains(normalized, "BSD-2-CLAUSE"):
		return "BSD-2-Clause"
	case normalized == "BSD" || strings.Contains(normalized, "BSD LICENSE"):
		return "BSD-3-Clause"
	case strings.Contains(normalized, "APACHE LICENSE") || strings.Contains(normalized, "APACHE 2.0") ||
		strings.Contains(normalized, "APACHE-2.0") || strings.Contains(normalized, "APACHE SOFTWARE"):
		return "Apache-2.0"
	case strings.Contains(normalized, "GNU LESSER GENERAL PUBLIC LICENSE") || strings.Contains(normalized, "LGPL-2.1"):
		return "LGPL-2.1"
	case strings.Contains(normalized, "LGPL"):
		return "LGPL-3.0"
	case strings.Contains(normalized, "GNU GENERAL PUBLIC LICENSE") && strings.Contains(normalized, "VERSION 2"):
		return "GPL-2.0"
	case strings.Contains(normalized, "GNU GENERAL PUBLIC LICENSE"):
		return "GPL-3.0"
	case strings.Contains(normalized, "GPL-3.0") || normalized == "GPLV3":
		return "GPL-3.0"
	case strings.Contains(normalized, "GPL-2.0") || normalized == "GPLV2":
		return "GPL-2.0"
	case strings.Contains(normalized, "MOZILLA PUBLIC LICENSE") || strings.Contains(normalized, "MPL-2.0") || normalized == "MPL":
		return "MPL-2.0"
	case strings.Contains(normalized, "ECLIPSE PUBLIC LICENSE") || strings.Contains(normalized, "EPL-2.0"):
		return "EPL-2.0"
	case strings.Contains(normalized, "UNLICENSE"):
		return "Unlicense"
	case strings.Contains(normalized, "ZLIB"):
		return "Zlib"
	// Substring match would hit "ARTISTIC" and "DISCLAIMER"
	case normalized == "ISC" || strings.Contains(normalized, "ISC LICENSE"):
		return "ISC"
	case strings.Contains(normalized, "PROPRIETARY") || strings.Contains(normalized, "COMMERCIAL") ||
		strings.Contains(normalized, "ALL RIGHTS RESERVED"):
		return "Proprietary"
	case strings.Contains(normalized, "BUSL") || strings.Contains(normalized, "BUSINESS SOURCE"):
		return "BUSL-1.1"
	case strings.Contains(normalized, "MIT-0"):
		return "MIT-0"
	case strings.Contains(normalized, "MIT"):
		return "MIT"
	case strings.Contains(normalized, "PSF") || strings.Contains(normalized, "PYTHON SOFTWARE FOUNDATION"):
		return "PSF-2.0"
	case strings.Contains(normalized, "WTFPL"):
		return "WTFPL"
	case strings.Contains(normalized, "0BSD"):
		return "0BSD"
	default:
		return ""
	}
}

var categories = map[string]Category{
	"MIT":          CategoryPermissive,
	"MIT-0":        CategoryPermissive,
	"Apache-2.0":   CategoryPermissive,
	"BSD-2-Clause": CategoryPermissive,
	"BSD-3-Clause": CategoryPermissive,
	"ISC":          CategoryPermissive,
	"Unlicense":    CategoryPermissive,
	"Zlib":         CategoryPermissive,
	"0BSD":         CategoryPermissive,
	"WTFPL":        CategoryPermissive,
	"PSF-2.0":      CategoryPermissive,

	"LGPL-2.1": CategoryWeakCopyleft,
	"LGPL-3.0": CategoryWeakCopyleft,
	"MPL-2.0":  CategoryWeakCopyleft,
	"EPL-2.0":  CategoryWeakCopyleft,
	"CDDL-1.0": CategoryWeakCopyleft,

	"GPL-2.0":  CategoryStrongCopyleft,
	"GPL-3.0":  CategoryStrongCopyleft,
	"AGPL-3.0": CategoryStrongCopyleft,

	"Proprietary": CategoryProprietary,
	"BUSL-1.1":    CategoryProprietary,
}

// CategoryOf maps an SPDX identifier to its compliance category
func CategoryOf(id string) Category {
	if cat, ok := categories[id]; ok {
		return cat
	}
	return CategoryUnknown
}

// URLFor returns the canonical URL for a license identifier
func URLFor(id string) string {
	switch id {
	case "MIT":
		return "https://opensource.org/licenses/MIT"
	case "Apache-2.0":
		return "https://www.apache.org/licenses/LICENSE-2.0"
	case "BSD-3-Clause":
		return "https://opensource.org/licenses/BSD-3-Clause"
	case "BSD-2-Clause":
		return "https://opensource.org/licenses/BSD-2-Clause"
	case "GPL-3.0":
		return "https://www.gnu.org/licenses/gpl-3.0.html"
	case "GPL-2.0":
		return "https://www.gnu.org/licenses/gpl-2.0.html"
	case "AGPL-3.0":
		return "https://www.gnu.org/licenses/agpl-3.0.html"
	case "LGPL-2.1":
		return "https://www.gnu.org/licenses/lgpl-2.1.html"
	case "LGPL-3.0":
		return "https://www.gnu.org/licenses/lgpl-3.0.html"
	case "ISC":
		return "https://opensource.org/licenses/ISC"
	case "MPL-2.0":
		return "https://www.mozilla.org/en-US/MPL/2.0/"
	case "EPL-2.0":
		return "https://www.eclipse.org/legal/epl-2.0/"
	case "Unlicense":
		return "https://unlicense.org/"
	case "Zlib":
		return "https://opensource.org/licenses/Zlib"
	default:
		return ""
	}
}
