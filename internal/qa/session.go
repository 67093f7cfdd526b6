package qa

import "github.com/avaldez/qatrail/internal/model"

// StartSession erases all prior run results (every item back to not_started,
// notes and timestamps cleared), recomputes totals from the reset set, and
// installs a new current session with zero counters and no bugs.
//
// Callers are responsible for rejecting empty names and testers; the store
// performs no validation.
func (s *Store) StartSession(name, tester string) model.TestSession {
	for ci := range s.state.Checklists {
		for ii := range s.state.Checklists[ci].Items {
			item := &s.state.Checklists[ci].Items[ii]
			item.Status = model.StatusNotStarted
			item.Notes = ""
			item.TestedAt = nil
		}
	}

	sess := model.TestSession{
		ID:         s.newID(),
		Name:       name,
		Tester:     tester,
		StartedAt:  s.now(),
		TotalTests: s.itemCount(),
		BugsFound:  []string{},
	}
	s.state.CurrentSession = &sess
	s.notify()
	return sess
}

// CompleteSession stamps completion time and notes on the current session,
// moves it to the historical list, and clears the current slot. No-op when
// no session is active.
func (s *Store) CompleteSession(notes string) {
	if s.state.CurrentSession == nil {
		return
	}
	now := s.now()
	sess := *s.state.CurrentSession
	sess.CompletedAt = &now
	sess.Notes = notes
	s.state.TestSessions = append(s.state.TestSessions, sess)
	s.state.CurrentSession = nil
	s.notify()
}

// DeleteSession removes a historical session and reports whether one was
// removed. The current session is never affected.
func (s *Store) DeleteSession(sessionID string) bool {
	for i := range s.state.TestSessions {
		if s.state.TestSessions[i].ID == sessionID {
			s.state.TestSessions = append(s.state.TestSessions[:i:i], s.state.TestSessions[i+1:]...)
			s.notify()
			return true
		}
	}
	return false
}

// recountSession recomputes the current session's counters from scratch
// over the full item set. No-op when no session is active.
func (s *Store) recountSession() {
	sess := s.state.CurrentSession
	if sess == nil {
		return
	}
	sess.TotalTests = 0
	sess.PassedTests = 0
	sess.FailedTests = 0
	sess.SkippedTests = 0
	for _, cl := range s.state.Checklists {
		for _, item := range cl.Items {
			sess.TotalTests++
			switch item.Status {
			case model.StatusPassed:
				sess.PassedTests++
			case model.StatusFailed:
				sess.FailedTests++
			case model.StatusSkipped:
				sess.SkippedTests++
			}
		}
	}
}

func (s *Store) itemCount() int {
	n := 0
	for _, cl := range s.state.Checklists {
		n += len(cl.Items)
	}
	return n
}
