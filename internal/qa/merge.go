package qa

import "github.com/avaldez/qatrail/internal/model"

// Reconcile merges prior run results onto a newly supplied checklist
// definition. When the supplied set fingerprints identically to the held
// one, the held checklists (which carry statuses) are kept untouched.
// Otherwise the supplied definition wins: items whose id existed before with
// a non-default status, notes, or tested-at timestamp keep those three
// fields; brand-new items start fresh; items whose id disappeared are
// dropped.
func (s *Store) Reconcile(supplied []model.TestChecklist) {
	supplied = normalizeChecklists(supplied)
	if model.Fingerprint(supplied) == model.Fingerprint(s.state.Checklists) {
		return
	}

	history := make(map[string]model.TestItem)
	for _, cl := range s.state.Checklists {
		for _, item := range cl.Items {
			if item.Status != model.StatusNotStarted || item.Notes != "" || item.TestedAt != nil {
				history[item.ID] = item
			}
		}
	}

	for ci := range supplied {
		for ii := range supplied[ci].Items {
			item := &supplied[ci].Items[ii]
			if prev, ok := history[item.ID]; ok {
				item.Status = prev.Status
				item.Notes = prev.Notes
				item.TestedAt = prev.TestedAt
			}
		}
	}

	s.state.Checklists = supplied
	s.recountSession()
	s.notify()
}
