// Package checklist reads and writes the generated checklist artifact, a
// YAML document listing detected screens and their seeded test items. The
// artifact is committed alongside the project and is the seed data the
// runtime state is reconciled against.
package checklist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avaldez/qatrail/internal/analyze"
	"github.com/avaldez/qatrail/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the conventional artifact location in a project root.
const DefaultPath = "qa.checklists.yaml"

// Document is the artifact's on-disk shape.
type Document struct {
	Screens    []string    `yaml:"screens"`
	Checklists []Checklist `yaml:"checklists"`
}

// Checklist is one screen's seeded items.
type Checklist struct {
	Screen string `yaml:"screen"`
	Items  []Item `yaml:"items"`
}

// Item is one seeded test. Status and run fields live only in the persisted
// runtime state, never in the artifact.
type Item struct {
	ID          string `yaml:"id"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// ScreenTests is one screen's scan output, the input to Build.
type ScreenTests struct {
	Screen     string   `json:"screen"`
	SourceFile string   `json:"source_file,omitempty"`
	Tests      []string `json:"tests"`
}

// Build assembles a Document from scan results. Item ids are the lowercased
// screen name plus a 3-digit sequence, stable for unchanged test lists.
func Build(results []ScreenTests) Document {
	var doc Document
	for _, r := range results {
		cl := Checklist{Screen: r.Screen}
		for i, desc := range r.Tests {
			cl.Items = append(cl.Items, Item{
				ID:          itemID(r.Screen, i),
				Category:    string(categoryFor(desc)),
				Description: desc,
			})
		}
		doc.Screens = append(doc.Screens, r.Screen)
		doc.Checklists = append(doc.Checklists, cl)
	}
	return doc
}

// AddScreen appends a screen seeded with the baseline test. Returns false if
// the screen already exists.
func AddScreen(doc *Document, screen string) bool {
	for _, s := range doc.Screens {
		if s == screen {
			return false
		}
	}
	doc.Screens = append(doc.Screens, screen)
	doc.Checklists = append(doc.Checklists, Checklist{
		Screen: screen,
		Items: []Item{{
			ID:          itemID(screen, 0),
			Category:    string(model.CategoryFunctionality),
			Description: analyze.BaselineTest,
		}},
	})
	return true
}

// Materialize converts the artifact into runtime checklists with every item
// in its default not-started state.
func (d Document) Materialize() []model.TestChecklist {
	var out []model.TestChecklist
	for _, cl := range d.Checklists {
		mc := model.TestChecklist{Screen: cl.Screen}
		for _, it := range cl.Items {
			mc.Items = append(mc.Items, model.TestItem{
				ID:          it.ID,
				Screen:      cl.Screen,
				Category:    model.TestCategory(it.Category),
				Description: it.Description,
				Status:      model.StatusNotStarted,
			})
		}
		out = append(out, mc)
	}
	return out
}

// Load reads an artifact. A missing file is an empty document, not an error.
func Load(path string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("reading checklist artifact: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parsing checklist artifact: %w", err)
	}
	return doc, nil
}

// Write saves the artifact, creating parent directories as needed.
func Write(path string, doc Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling checklist artifact: %w", err)
	}
	header := "# Generated by qat. Edit freely; item ids carry test history across regenerations.\n"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating artifact directory: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("writing checklist artifact: %w", err)
	}
	return nil
}

// itemID formats the stable id for the i-th item of a screen.
func itemID(screen string, i int) string {
	return fmt.Sprintf("%s_%03d", strings.ToLower(screen), i+1)
}

// categoryFor assigns a test category from description keywords.
func categoryFor(desc string) model.TestCategory {
	lower := strings.ToLower(desc)
	switch {
	case strings.Contains(lower, "navigation") || strings.Contains(lower, "backend") ||
		strings.Contains(lower, "data loads") || strings.Contains(lower, "session persists"):
		return model.CategoryIntegration
	case strings.Contains(lower, "render") || strings.Contains(lower, "indicator") ||
		strings.Contains(lower, "empty state") || strings.Contains(lower, "masks") ||
		strings.Contains(lower, "focus"):
		return model.CategoryUI
	case strings.Contains(lower, "while data is loading") || strings.Contains(lower, "performance"):
		return model.CategoryPerformance
	default:
		return model.CategoryFunctionality
	}
}
