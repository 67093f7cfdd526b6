package routes

import (
	"os"
	"path/filepath"
	"regexp"
)

// configFiles is the fixed, ordered list of conventional locations checked
// for router configuration. The first file yielding any routes wins.
var configFiles = []string{
	"src/router.tsx",
	"src/router.jsx",
	"src/routes.tsx",
	"src/routes.jsx",
	"src/App.tsx",
	"src/App.jsx",
	"src/app.tsx",
	"src/app.jsx",
	"src/main.tsx",
	"src/main.jsx",
	"src/index.tsx",
	"src/index.jsx",
	"App.tsx",
	"App.jsx",
}

// shape is one syntactic form a (path, component) pair can take. pathIdx and
// compIdx say which capture group holds which half, since the attribute
// order differs between shapes.
type shape struct {
	re      *regexp.Regexp
	pathIdx int
	compIdx int
}

// routerShapes match object-literal route entries inside a
// router-construction call, in the three forms that occur in practice:
// path before element, element before path, and the shorthand
// component-reference form.
var routerShapes = []shape{
	{regexp.MustCompile(`path:\s*['"]([^'"]+)['"][^{}]*?element:\s*<\s*(\w+)`), 1, 2},
	{regexp.MustCompile(`element:\s*<\s*(\w+)[^{}]*?path:\s*['"]([^'"]+)['"]`), 2, 1},
	{regexp.MustCompile(`path:\s*['"]([^'"]+)['"][^{}]*?Component:\s*(\w+)`), 1, 2},
}

// elementShapes match declarative <Route .../> markup, with the same three
// attribute-order variants as routerShapes.
var elementShapes = []shape{
	{regexp.MustCompile(`<Route[^>]*\bpath=["']([^"']+)["'][^>]*\belement=\{\s*<\s*(\w+)`), 1, 2},
	{regexp.MustCompile(`<Route[^>]*\belement=\{\s*<\s*(\w+)[^}]*\}[^>]*\bpath=["']([^"']+)["']`), 2, 1},
	{regexp.MustCompile(`<Route[^>]*\bpath=["']([^"']+)["'][^>]*\bcomponent=\{\s*(\w+)`), 1, 2},
}

// scanConfigFiles applies every shape to each conventional file in order and
// returns the concatenated matches from the first file that yields any.
// Missing or unreadable files are skipped.
func scanConfigFiles(root string, shapes []shape, kind Kind) Detection {
	for _, rel := range configFiles {
		path := filepath.Join(root, rel)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if rs := extractShapes(string(data), shapes); len(rs) > 0 {
			return Detection{Kind: kind, Routes: dedupeRoutes(rs), SourceFile: rel}
		}
	}
	return Detection{Kind: KindNone}
}

// extractShapes runs every shape over src and concatenates all matches.
// File stays empty on config-extracted routes: the config file is recorded
// once on the Detection, and the component source is located by name.
func extractShapes(src string, shapes []shape) []Route {
	var out []Route
	for _, sh := range shapes {
		for _, m := range sh.re.FindAllStringSubmatch(src, -1) {
			out = append(out, Route{
				Path:      m[sh.pathIdx],
				Component: m[sh.compIdx],
			})
		}
	}
	return out
}
