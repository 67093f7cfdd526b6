package checklist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avaldez/qatrail/internal/analyze"
	"github.com/avaldez/qatrail/internal/model"
)

func sampleResults() []ScreenTests {
	return []ScreenTests{
		{Screen: "HOME", SourceFile: "src/pages/Home.tsx", Tests: []string{
			analyze.BaselineTest,
			"Click the 'Save' button and verify the expected action occurs",
		}},
		{Screen: "USERS", SourceFile: "src/pages/Users.tsx", Tests: []string{
			analyze.BaselineTest,
		}},
	}
}

func TestBuildAssignsStableIDs(t *testing.T) {
	doc := Build(sampleResults())

	if len(doc.Screens) != 2 || doc.Screens[0] != "HOME" || doc.Screens[1] != "USERS" {
		t.Fatalf("Screens = %v", doc.Screens)
	}
	if got := doc.Checklists[0].Items[0].ID; got != "home_001" {
		t.Errorf("first id = %q, want home_001", got)
	}
	if got := doc.Checklists[0].Items[1].ID; got != "home_002" {
		t.Errorf("second id = %q, want home_002", got)
	}
	if got := doc.Checklists[1].Items[0].ID; got != "users_001" {
		t.Errorf("users id = %q, want users_001", got)
	}

	// Rebuilding from the same results reproduces the same ids, which is
	// what lets test history survive regeneration.
	again := Build(sampleResults())
	if model.Fingerprint(doc.Materialize()) != model.Fingerprint(again.Materialize()) {
		t.Error("rebuild changed the id set")
	}
}

func TestBuildCategorizes(t *testing.T) {
	doc := Build([]ScreenTests{{Screen: "X", Tests: []string{
		"Verify navigation to /home works",
		"Verify table renders with data",
		"Submit the form with valid data",
	}}})
	want := []model.TestCategory{
		model.CategoryIntegration,
		model.CategoryUI,
		model.CategoryFunctionality,
	}
	for i, item := range doc.Checklists[0].Items {
		if got := model.TestCategory(item.Category); got != want[i] {
			t.Errorf("item %d category = %q, want %q", i, got, want[i])
		}
	}
}

func TestAddScreen(t *testing.T) {
	doc := Build(sampleResults())
	if !AddScreen(&doc, "SETTINGS") {
		t.Fatal("AddScreen returned false for new screen")
	}
	if AddScreen(&doc, "SETTINGS") {
		t.Error("AddScreen returned true for duplicate screen")
	}

	last := doc.Checklists[len(doc.Checklists)-1]
	if last.Screen != "SETTINGS" || len(last.Items) != 1 {
		t.Fatalf("appended checklist = %+v", last)
	}
	if last.Items[0].Description != analyze.BaselineTest {
		t.Errorf("seed test = %q", last.Items[0].Description)
	}
	if last.Items[0].ID != "settings_001" {
		t.Errorf("seed id = %q", last.Items[0].ID)
	}
}

func TestMaterialize(t *testing.T) {
	doc := Build(sampleResults())
	checklists := doc.Materialize()

	if len(checklists) != 2 {
		t.Fatalf("len = %d", len(checklists))
	}
	for _, cl := range checklists {
		for _, item := range cl.Items {
			if item.Status != model.StatusNotStarted {
				t.Errorf("item %s status = %q", item.ID, item.Status)
			}
			if item.Screen != cl.Screen {
				t.Errorf("item %s screen = %q, want %q", item.ID, item.Screen, cl.Screen)
			}
		}
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qa", "checklists.yaml")
	doc := Build(sampleResults())

	if err := Write(path, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Generated by qat") {
		t.Error("artifact missing header comment")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if model.Fingerprint(loaded.Materialize()) != model.Fingerprint(doc.Materialize()) {
		t.Error("id set changed across write/load")
	}
	if loaded.Checklists[0].Items[1].Description != doc.Checklists[0].Items[1].Description {
		t.Error("descriptions changed across write/load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Screens) != 0 || len(doc.Checklists) != 0 {
		t.Errorf("missing file yielded %+v, want empty document", doc)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("screens: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}
