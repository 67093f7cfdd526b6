// Package scan runs the checklist-generation pipeline over a project tree:
// route detection, screen-name derivation, component analysis, and test
// suggestion. It is used by the CLI's init and scan commands only; the
// interactive runtime never touches the filesystem.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/avaldez/qatrail/internal/analyze"
	"github.com/avaldez/qatrail/internal/checklist"
	"github.com/avaldez/qatrail/internal/routes"
	"github.com/avaldez/qatrail/internal/screen"
)

// Summary is the full result of scanning one project root.
type Summary struct {
	Kind       routes.Kind             `json:"kind"`
	SourceFile string                  `json:"source_file,omitempty"`
	Results    []checklist.ScreenTests `json:"results"`
}

// componentDirs are searched, in order, when a route names a component but
// detection did not record its file.
var componentDirs = []string{"src/pages", "src/views", "src/screens", "src/components", "src"}

var componentExts = []string{".tsx", ".jsx", ".ts", ".js"}

// Project scans root and returns suggested tests per detected screen. Routes
// that resolve to the same screen are merged into the first occurrence.
func Project(root string) Summary {
	d := routes.Detect(root)
	sum := Summary{Kind: d.Kind, SourceFile: d.SourceFile}

	index := make(map[string]int)
	for _, r := range d.Routes {
		name := screenName(r)
		srcFile, srcText := componentSource(root, r)

		a := analyze.Analyze(srcText)
		tests := analyze.Suggest(name, a)
		if len(tests) <= 1 {
			// Nothing beyond the baseline: downgrade to keyword fallback.
			tests = analyze.FallbackSuggest(fallbackName(r, srcFile), srcText)
		}

		if i, ok := index[name]; ok {
			sum.Results[i].Tests = mergeTests(sum.Results[i].Tests, tests)
			continue
		}
		index[name] = len(sum.Results)
		sum.Results = append(sum.Results, checklist.ScreenTests{
			Screen:     name,
			SourceFile: srcFile,
			Tests:      tests,
		})
	}
	return sum
}

// screenName derives the screen id for a route, preferring the URL path and
// falling back to the component name.
func screenName(r routes.Route) string {
	if r.Path != "" {
		return screen.Derive(r.Path)
	}
	return screen.FromFile(r.Component)
}

// componentSource returns the route's component file and its contents.
// A route with no locatable source yields empty text, which downgrades the
// analysis to keyword fallback.
func componentSource(root string, r routes.Route) (string, string) {
	if r.File != "" {
		if data, err := os.ReadFile(filepath.Join(root, r.File)); err == nil {
			return r.File, string(data)
		}
	}
	if r.Component == "" {
		return "", ""
	}

	for _, dir := range componentDirs {
		for _, ext := range componentExts {
			rel := filepath.Join(dir, r.Component+ext)
			if data, err := os.ReadFile(filepath.Join(root, rel)); err == nil {
				return filepath.ToSlash(rel), string(data)
			}
		}
	}

	// Last resort: walk src for a file named after the component.
	found, text := "", ""
	srcDir := filepath.Join(root, "src")
	filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || found != "" {
			return nil
		}
		name := d.Name()
		ext := filepath.Ext(name)
		if strings.TrimSuffix(name, ext) != r.Component {
			return nil
		}
		if data, readErr := os.ReadFile(path); readErr == nil {
			if rel, relErr := filepath.Rel(root, path); relErr == nil {
				found, text = filepath.ToSlash(rel), string(data)
			}
		}
		return nil
	})
	return found, text
}

func fallbackName(r routes.Route, srcFile string) string {
	if srcFile != "" {
		return srcFile
	}
	if r.Component != "" {
		return r.Component
	}
	return r.Path
}

// mergeTests appends tests not already present, preserving order.
func mergeTests(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[t] = true
	}
	for _, t := range extra {
		if !seen[t] {
			seen[t] = true
			existing = append(existing, t)
		}
	}
	return existing
}
