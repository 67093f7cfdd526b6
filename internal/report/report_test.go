package report

import (
	"strings"
	"testing"
	"time"

	"github.com/avaldez/qatrail/internal/model"
)

func TestRenderNoSession(t *testing.T) {
	got := Render(model.QAState{})
	if !strings.Contains(got, "No active test session") {
		t.Errorf("no-session report = %q", got)
	}
}

func reportState() model.QAState {
	started := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	return model.QAState{
		CurrentSession: &model.TestSession{
			ID: "sess-1", Name: "release check", Tester: "ana",
			StartedAt: started, TotalTests: 3, PassedTests: 1, FailedTests: 1,
			BugsFound: []string{"bug-1", "bug-gone"},
			Notes:     "stopped at checkout",
		},
		Checklists: []model.TestChecklist{
			{Screen: "HOME", Items: []model.TestItem{
				{ID: "home_001", Screen: "HOME", Description: "Screen loads without errors",
					Status: model.StatusPassed},
				{ID: "home_002", Screen: "HOME", Description: "Click the 'Save' button and verify the expected action occurs",
					Status: model.StatusFailed, Notes: "nothing happens"},
				{ID: "home_003", Screen: "HOME", Description: "Verify navigation to /about works",
					Status: model.StatusNotStarted},
			}},
		},
		Bugs: []model.BugReport{
			{ID: "bug-1", Title: "Save button dead", Description: "No effect on click",
				Severity: model.SeverityHigh, Status: model.BugOpen, Screen: "HOME",
				ExpectedBehavior: "record is saved", ActualBehavior: "nothing",
				StepsToReproduce: []string{"open HOME", "click Save"}},
		},
	}
}

func TestRenderSessionReport(t *testing.T) {
	got := Render(reportState())

	for _, want := range []string{
		"# QA Test Report",
		"**Session:** release check",
		"**Tester:** ana",
		"**Started:** 2026-02-10 09:00",
		"**Completed:** In Progress",
		"- Total tests: 3",
		"- Passed: 1",
		"- Failed: 1",
		"- Skipped: 0",
		"- Bugs found: 1",
		"## HOME",
		"- ✅ Screen loads without errors",
		"- ❌ Click the 'Save' button",
		"  - Note: nothing happens",
		"- ⬜ Verify navigation to /about works",
		"### 1. Save button dead",
		"- Severity: high",
		"- Status: open",
		"- Expected: record is saved",
		"- Actual: nothing",
		"  1. open HOME",
		"  2. click Save",
		"## Session Notes",
		"stopped at checkout",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q\nfull report:\n%s", want, got)
		}
	}
}

func TestRenderCountsOnlyLinkedBugs(t *testing.T) {
	state := reportState()
	// An unlinked bug in the collection must not appear.
	state.Bugs = append(state.Bugs, model.BugReport{
		ID: "bug-2", Title: "unrelated layout glitch", Status: model.BugOpen,
	})
	got := Render(state)
	if strings.Contains(got, "unrelated layout glitch") {
		t.Error("report includes a bug the session never found")
	}
	if !strings.Contains(got, "- Bugs found: 1") {
		t.Error("deleted or unlinked bug ids inflated the count")
	}
}

func TestRenderCompletedSession(t *testing.T) {
	state := reportState()
	done := time.Date(2026, 2, 10, 17, 30, 0, 0, time.UTC)
	state.CurrentSession.CompletedAt = &done
	got := Render(state)
	if !strings.Contains(got, "**Completed:** 2026-02-10 17:30") {
		t.Errorf("completed timestamp missing:\n%s", got)
	}
}
