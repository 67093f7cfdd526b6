package qa

import "github.com/avaldez/qatrail/internal/model"

// ReportBug files a bug: it assigns a fresh id and report timestamp, appends
// the bug, and links it to the active session if one is running. The id is
// returned. Any caller-set ID, ReportedAt, or FixedAt on the input is
// overwritten or cleared.
func (s *Store) ReportBug(bug model.BugReport) string {
	bug.ID = s.newID()
	bug.ReportedAt = s.now()
	bug.FixedAt = nil
	if bug.Status == "" {
		bug.Status = model.BugOpen
	}
	if bug.ReportedBy == "" {
		bug.ReportedBy = s.tester
	}
	s.state.Bugs = append(s.state.Bugs, bug)
	if s.state.CurrentSession != nil {
		s.state.CurrentSession.BugsFound = append(s.state.CurrentSession.BugsFound, bug.ID)
	}
	s.notify()
	return bug.ID
}

// UpdateBugStatus sets a bug's status. FixedAt is stamped exactly on a
// transition into fixed; repeated fixed updates keep the original stamp.
// Unknown ids are a no-op.
func (s *Store) UpdateBugStatus(bugID string, status model.BugStatus) {
	for i := range s.state.Bugs {
		bug := &s.state.Bugs[i]
		if bug.ID != bugID {
			continue
		}
		if status == model.BugFixed && bug.Status != model.BugFixed {
			now := s.now()
			bug.FixedAt = &now
		}
		bug.Status = status
		s.notify()
		return
	}
}

// DeleteBug removes a bug, purges its id from the active session's found
// list, and reports whether a bug was removed.
func (s *Store) DeleteBug(bugID string) bool {
	for i := range s.state.Bugs {
		if s.state.Bugs[i].ID != bugID {
			continue
		}
		s.state.Bugs = append(s.state.Bugs[:i:i], s.state.Bugs[i+1:]...)
		if sess := s.state.CurrentSession; sess != nil {
			for j, id := range sess.BugsFound {
				if id == bugID {
					sess.BugsFound = append(sess.BugsFound[:j:j], sess.BugsFound[j+1:]...)
					break
				}
			}
		}
		s.notify()
		return true
	}
	return false
}
