package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != "" || cfg.StorageKey != "" || cfg.TesterName != "" || cfg.DefaultFormat != "" {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "config.toml")
	cfg := &Config{
		DBPath:        "/custom/qa.db",
		StorageKey:    "myapp_qa",
		TesterName:    "ana",
		DefaultFormat: "json",
		ChecklistPath: "qa/checklists.yaml",
	}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.DBPath != cfg.DBPath {
		t.Errorf("db_path: got %q, want %q", loaded.DBPath, cfg.DBPath)
	}
	if loaded.StorageKey != cfg.StorageKey {
		t.Errorf("storage_key: got %q, want %q", loaded.StorageKey, cfg.StorageKey)
	}
	if loaded.TesterName != cfg.TesterName {
		t.Errorf("tester_name: got %q, want %q", loaded.TesterName, cfg.TesterName)
	}
	if loaded.DefaultFormat != cfg.DefaultFormat {
		t.Errorf("default_format: got %q, want %q", loaded.DefaultFormat, cfg.DefaultFormat)
	}
	if loaded.ChecklistPath != cfg.ChecklistPath {
		t.Errorf("checklist_path: got %q, want %q", loaded.ChecklistPath, cfg.ChecklistPath)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("db_path = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestGetSet(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Set("tester_name", "bob"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := cfg.Get("tester_name")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "bob" {
		t.Errorf("tester_name = %q, want %q", got, "bob")
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Set("no_such_key", "x"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if _, err := cfg.Get("no_such_key"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestSetValidatesDefaultFormat(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Set("default_format", "xml"); err == nil {
		t.Fatal("expected error for invalid format")
	}
	for _, ok := range []string{"", "table", "json"} {
		if err := cfg.Set("default_format", ok); err != nil {
			t.Errorf("Set(default_format, %q) = %v", ok, err)
		}
	}
}
