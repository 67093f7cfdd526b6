package qa

import (
	"testing"
	"time"

	"github.com/avaldez/qatrail/internal/model"
)

func newDetectingStore(checklists []model.TestChecklist) *Store {
	return New(Options{
		DefaultChecklists:     checklists,
		EnableScreenDetection: true,
		Now:                   func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) },
	})
}

func TestMatchScreen(t *testing.T) {
	s := newDetectingStore([]model.TestChecklist{
		{Screen: "DASHBOARD"},
		{Screen: "USER_PROFILE"},
		{Screen: "SETTINGS"},
	})

	tests := []struct {
		path string
		want string
	}{
		{"/", "DASHBOARD"},
		{"", "DASHBOARD"},
		{"#/", "DASHBOARD"},
		{"/user-profile", "USER_PROFILE"},
		{"/settings/advanced", "SETTINGS"},
		{"#/userprofile", "USER_PROFILE"},
		{"/unknown", ""},
	}
	for _, tt := range tests {
		if got := s.MatchScreen(tt.path); got != tt.want {
			t.Errorf("MatchScreen(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMatchScreenRootFallsBackToFirstChecklist(t *testing.T) {
	s := newDetectingStore([]model.TestChecklist{
		{Screen: "CATALOG"},
		{Screen: "CHECKOUT"},
	})
	if got := s.MatchScreen("/"); got != "CATALOG" {
		t.Errorf("MatchScreen(/) = %q, want first checklist", got)
	}
}

func TestMatchScreenOverrideWins(t *testing.T) {
	s := newDetectingStore([]model.TestChecklist{{Screen: "HOME"}})
	s.OverrideScreen("SETTINGS")
	if got := s.MatchScreen("/home"); got != "SETTINGS" {
		t.Errorf("MatchScreen with override = %q, want SETTINGS", got)
	}
	s.OverrideScreen("")
	if got := s.MatchScreen("/home"); got != "HOME" {
		t.Errorf("MatchScreen after clearing override = %q, want HOME", got)
	}
}

func TestMatchScreenDetectionDisabled(t *testing.T) {
	s := New(Options{DefaultChecklists: []model.TestChecklist{{Screen: "HOME"}}})
	if got := s.MatchScreen("/home"); got != "" {
		t.Errorf("MatchScreen with detection off = %q, want empty", got)
	}
	s.OverrideScreen("HOME")
	if got := s.MatchScreen("/anything"); got != "HOME" {
		t.Error("override ignored while detection is off")
	}
}
