package cli

import (
	"reflect"
	"testing"

	"github.com/avaldez/qatrail/internal/model"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"home_001", "home_001", 0},
		{"home_01", "home_001", 1},
		{"hoem_001", "home_001", 2},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := editDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNearestTestIDs(t *testing.T) {
	state := model.QAState{
		Checklists: []model.TestChecklist{
			{Screen: "HOME", Items: []model.TestItem{
				{ID: "home_001"}, {ID: "home_002"},
			}},
			{Screen: "USERS", Items: []model.TestItem{
				{ID: "users_001"},
			}},
		},
	}

	got := nearestTestIDs(state, "home_01")
	want := []string{"home_001", "home_002"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("nearestTestIDs(home_01) = %v, want %v", got, want)
	}

	if got := nearestTestIDs(state, "zzzzzzzzzz"); got != nil {
		t.Errorf("distant id should yield no suggestions, got %v", got)
	}
}
