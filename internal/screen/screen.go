// Package screen derives canonical screen identifiers from route paths and
// component file names. Screen ids are the keys checklists and bugs are
// organized by, so derivation must be deterministic and idempotent.
package screen

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Home is the sentinel screen id for the root route.
const Home = "HOME"

// fileSuffixes are component-name suffixes that carry no screen meaning and
// are stripped before deriving (longest first so "Screen" wins over "Page"
// when both could apply).
var fileSuffixes = []string{"Component", "Container", "Screen", "Page", "View"}

// Derive maps a route path or an already-derived name to a canonical
// uppercase screen id. A dynamic route segment (":id") is dropped from the
// name and marked with a _DETAIL suffix. Derive(Derive(x)) == Derive(x).
func Derive(pathOrName string) string {
	s := strings.TrimPrefix(pathOrName, "/")
	dynamic := strings.Contains(s, ":")

	if dynamic {
		var kept []string
		for _, seg := range strings.Split(s, "/") {
			if strings.HasPrefix(seg, ":") {
				continue
			}
			kept = append(kept, seg)
		}
		s = strings.Join(kept, "/")
	}

	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.Trim(s, "_")
	s = strings.ToUpper(s)

	if s == "" {
		s = Home
	}
	if dynamic {
		s += "_DETAIL"
	}
	return s
}

// FromFile derives a screen id from a component file or component name:
// the extension and any screen-like suffix are stripped, then camelCase
// boundaries become underscores. "UserProfilePage.tsx" -> "USER_PROFILE".
func FromFile(name string) string {
	base := filepath.Base(name)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	for _, suffix := range fileSuffixes {
		if len(base) > len(suffix) && strings.HasSuffix(base, suffix) {
			base = strings.TrimSuffix(base, suffix)
			break
		}
	}

	return Derive(splitCamel(base))
}

// splitCamel inserts an underscore at each lowercase-to-uppercase transition.
func splitCamel(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune('_')
		}
		b.WriteRune(r)
	}
	return b.String()
}
