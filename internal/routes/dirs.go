package routes

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var pagesDirs = []string{"src/pages", "pages"}
var appDirs = []string{"src/app", "app"}

// pageExts are the file extensions a page component may use.
var pageExts = map[string]bool{".tsx": true, ".jsx": true, ".ts": true, ".js": true}

// scanPagesDir maps a flat or nested pages-style directory to routes: the
// relative file path becomes the URL path, "index" collapses to the parent
// path, and a bracket-delimited segment becomes a dynamic parameter.
// Unreadable directories contribute nothing.
func scanPagesDir(root string) []Route {
	for _, rel := range pagesDirs {
		dir := filepath.Join(root, rel)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}

		var rs []Route
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				// Next.js-style API routes are not screens.
				if d.Name() == "api" {
					return filepath.SkipDir
				}
				return nil
			}
			name := d.Name()
			ext := filepath.Ext(name)
			if !pageExts[ext] || strings.HasPrefix(name, "_") {
				return nil
			}

			relPath, err := filepath.Rel(dir, path)
			if err != nil {
				return nil
			}
			relPath = strings.TrimSuffix(relPath, ext)

			var segs []string
			for _, seg := range strings.Split(filepath.ToSlash(relPath), "/") {
				if seg == "index" {
					continue
				}
				segs = append(segs, bracketToParam(seg))
			}

			rs = append(rs, Route{
				Path:      "/" + strings.Join(segs, "/"),
				Component: componentName(strings.TrimSuffix(name, ext)),
				File:      filepath.ToSlash(filepath.Join(rel, relPath)) + ext,
			})
			return nil
		})

		if len(rs) > 0 {
			sortRoutes(rs)
			return dedupeRoutes(rs)
		}
	}
	return nil
}

// scanAppDir maps an app-style nested directory to routes. Only directories
// containing a page marker file contribute a route; parenthesis-delimited
// segments are route groups and add no path segment; bracket segments are
// dynamic parameters. Unreadable directories contribute nothing.
func scanAppDir(root string) []Route {
	for _, rel := range appDirs {
		dir := filepath.Join(root, rel)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}

		var rs []Route
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			base := d.Name()
			ext := filepath.Ext(base)
			if !pageExts[ext] || strings.TrimSuffix(base, ext) != "page" {
				return nil
			}

			relDir, err := filepath.Rel(dir, filepath.Dir(path))
			if err != nil {
				return nil
			}

			var segs []string
			last := ""
			if relDir != "." {
				for _, seg := range strings.Split(filepath.ToSlash(relDir), "/") {
					if strings.HasPrefix(seg, "(") && strings.HasSuffix(seg, ")") {
						continue
					}
					seg = bracketToParam(seg)
					segs = append(segs, seg)
					if !strings.HasPrefix(seg, ":") {
						last = seg
					}
				}
			}

			comp := "Home"
			if last != "" {
				comp = componentName(last)
			}
			rs = append(rs, Route{
				Path:      "/" + strings.Join(segs, "/"),
				Component: comp,
				File:      filepath.ToSlash(filepath.Join(rel, relDir, base)),
			})
			return nil
		})

		if len(rs) > 0 {
			sortRoutes(rs)
			return dedupeRoutes(rs)
		}
	}
	return nil
}

// bracketToParam converts "[id]" to ":id"; other segments pass through.
func bracketToParam(seg string) string {
	if strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]") {
		return ":" + strings.Trim(seg, "[]")
	}
	return seg
}

// componentName turns a file or directory segment into a component-style
// name: brackets and hyphens removed, first letter of each word upper-cased.
func componentName(seg string) string {
	seg = strings.Trim(seg, "[]")
	parts := strings.Split(seg, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}

// sortRoutes orders routes by path for stable output across filesystems.
func sortRoutes(rs []Route) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].Path < rs[j].Path })
}
