// Package routes detects the route table of a web front-end project. It is a
// best-effort heuristic over conventional file locations and directory
// layouts, not a parser: it may under- or over-match, and it never errors on
// unreadable input.
package routes

// Route pairs a URL path with the component that renders it.
type Route struct {
	Path      string `json:"path"`
	Component string `json:"component"`
	// File is the source file the route was extracted from or the page
	// file itself for directory-convention routes.
	File string `json:"file,omitempty"`
}

// Kind identifies which detection strategy produced a result.
type Kind string

const (
	// KindRouter means routes came from a router-construction call.
	KindRouter Kind = "router"
	// KindRoutes means routes came from declarative route elements.
	KindRoutes Kind = "routes"
	// KindPages means routes came from a pages-style directory convention.
	KindPages Kind = "pages"
	// KindApp means routes came from an app-style directory convention.
	KindApp Kind = "app"
	// KindNone means no strategy found any routes.
	KindNone Kind = "none"
)

// Detection is the result of scanning a project root.
type Detection struct {
	Kind       Kind    `json:"kind"`
	Routes     []Route `json:"routes"`
	SourceFile string  `json:"source_file,omitempty"`
}

// Detect tries each strategy in priority order and returns the first
// non-empty result: router-construction calls, then declarative route
// elements, then pages- and app-style directory conventions.
func Detect(root string) Detection {
	if d := scanConfigFiles(root, routerShapes, KindRouter); len(d.Routes) > 0 {
		return d
	}
	if d := scanConfigFiles(root, elementShapes, KindRoutes); len(d.Routes) > 0 {
		return d
	}
	if rs := scanPagesDir(root); len(rs) > 0 {
		return Detection{Kind: KindPages, Routes: rs}
	}
	if rs := scanAppDir(root); len(rs) > 0 {
		return Detection{Kind: KindApp, Routes: rs}
	}
	return Detection{Kind: KindNone}
}

// dedupeRoutes keeps the first route seen for each (path, component) pair,
// preserving order. Two components mounted on the same path both survive;
// scanning merges them at the screen level.
func dedupeRoutes(rs []Route) []Route {
	seen := make(map[Route]bool, len(rs))
	out := rs[:0]
	for _, r := range rs {
		key := Route{Path: r.Path, Component: r.Component}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
