package qa

import (
	"testing"

	"github.com/avaldez/qatrail/internal/model"
)

func TestReportBugDefaults(t *testing.T) {
	s := newTestStore(t)
	id := s.ReportBug(model.BugReport{
		Title:       "Save button does nothing",
		Description: "Clicking save on HOME has no effect",
		Severity:    model.SeverityHigh,
		Screen:      "HOME",
	})
	if id == "" {
		t.Fatal("empty bug id")
	}

	bugs := s.State().Bugs
	if len(bugs) != 1 {
		t.Fatalf("Bugs len = %d, want 1", len(bugs))
	}
	b := bugs[0]
	if b.ID != id {
		t.Errorf("stored id %q != returned id %q", b.ID, id)
	}
	if b.Status != model.BugOpen {
		t.Errorf("Status = %q, want %q", b.Status, model.BugOpen)
	}
	if b.ReportedBy != "ana" {
		t.Errorf("ReportedBy = %q, want store tester", b.ReportedBy)
	}
	if b.ReportedAt.IsZero() {
		t.Error("ReportedAt not stamped")
	}
	if b.FixedAt != nil {
		t.Error("new bug has FixedAt set")
	}
}

func TestReportBugLinksToActiveSession(t *testing.T) {
	s := newTestStore(t)
	id := s.ReportBug(model.BugReport{Title: "pre-session bug", Description: "x"})

	s.StartSession("run", "ana")
	inSession := s.ReportBug(model.BugReport{Title: "session bug", Description: "y"})

	sess := s.State().CurrentSession
	if len(sess.BugsFound) != 1 || sess.BugsFound[0] != inSession {
		t.Errorf("BugsFound = %v, want [%s]", sess.BugsFound, inSession)
	}
	for _, got := range sess.BugsFound {
		if got == id {
			t.Error("pre-session bug linked to session")
		}
	}
}

func TestUpdateBugStatusStampsFixedAtOnTransitionOnly(t *testing.T) {
	s := newTestStore(t)
	id := s.ReportBug(model.BugReport{Title: "b", Description: "d"})

	s.UpdateBugStatus(id, model.BugInProgress)
	if b := s.State().Bugs[0]; b.FixedAt != nil {
		t.Error("FixedAt set on in_progress")
	}

	s.UpdateBugStatus(id, model.BugFixed)
	b := s.State().Bugs[0]
	if b.FixedAt == nil {
		t.Fatal("FixedAt not stamped on fix")
	}
	first := *b.FixedAt

	// Re-asserting fixed must not restamp; reopening clears nothing either.
	s.UpdateBugStatus(id, model.BugFixed)
	if got := *s.State().Bugs[0].FixedAt; !got.Equal(first) {
		t.Error("FixedAt restamped on repeated fixed status")
	}
	s.UpdateBugStatus(id, model.BugOpen)
	if s.State().Bugs[0].FixedAt == nil {
		t.Error("FixedAt cleared on reopen")
	}
}

func TestUpdateBugStatusUnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t)
	s.ReportBug(model.BugReport{Title: "b", Description: "d"})
	s.UpdateBugStatus("missing", model.BugFixed)
	if got := s.State().Bugs[0].Status; got != model.BugOpen {
		t.Errorf("unrelated bug status = %q after unknown-id update", got)
	}
}

func TestDeleteBugPurgesSessionLink(t *testing.T) {
	s := newTestStore(t)
	s.StartSession("run", "ana")
	id := s.ReportBug(model.BugReport{Title: "b", Description: "d"})
	keep := s.ReportBug(model.BugReport{Title: "keep", Description: "d"})

	if !s.DeleteBug(id) {
		t.Error("DeleteBug = false for existing bug")
	}
	if s.DeleteBug(id) {
		t.Error("DeleteBug = true for already-deleted bug")
	}

	state := s.State()
	if len(state.Bugs) != 1 || state.Bugs[0].ID != keep {
		t.Errorf("Bugs = %+v, want only %s", state.Bugs, keep)
	}
	if got := state.CurrentSession.BugsFound; len(got) != 1 || got[0] != keep {
		t.Errorf("BugsFound = %v, want [%s]", got, keep)
	}
}

func TestBugRoundTripWithoutSession(t *testing.T) {
	s := newTestStore(t)
	id := s.ReportBug(model.BugReport{
		Title:            "crash",
		Description:      "panic on load",
		StepsToReproduce: []string{"open app", "wait"},
		Severity:         model.SeverityCritical,
	})
	if !s.DeleteBug(id) {
		t.Error("DeleteBug failed with no session")
	}
	if len(s.State().Bugs) != 0 {
		t.Error("bug survived delete")
	}
}
