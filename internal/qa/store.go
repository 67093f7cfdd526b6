// Package qa holds the QA state machine: checklists, the active test
// session, historical sessions, and bug reports. A Store is an explicitly
// owned state container; the embedding surface (CLI or panel) drives all
// mutation through its operations and persists snapshots through the
// OnChange hook.
//
// Operations assume trusted input: validating user-supplied names and titles
// is a boundary concern. Operations on unknown ids are silent no-ops, which
// keeps them idempotent.
package qa

import (
	"time"

	"github.com/avaldez/qatrail/internal/model"
	"github.com/google/uuid"
)

// Options configures a Store.
type Options struct {
	// DefaultChecklists seed the state when nothing was persisted.
	DefaultChecklists []model.TestChecklist
	// StorageKey is the persistence key snapshots are stored under.
	StorageKey string
	// EnableScreenDetection toggles automatic URL-based screen matching.
	EnableScreenDetection bool
	// TesterName is the default attribution for sessions and bugs.
	TesterName string
	// OnChange, when set, receives a snapshot after every mutation.
	// It is fire-and-forget: the mutation does not wait on it and any
	// persistence failure must be handled inside the hook.
	OnChange func(model.QAState)
	// Now and NewID exist for tests; they default to time.Now and uuid.
	Now   func() time.Time
	NewID func() string
}

// DefaultStorageKey is used when Options.StorageKey is empty.
const DefaultStorageKey = "poli_qa_state"

// Store is the in-memory QA state machine.
type Store struct {
	state          model.QAState
	storageKey     string
	tester         string
	detectScreens  bool
	screenOverride string
	onChange       func(model.QAState)
	now            func() time.Time
	newID          func() string
}

// New creates a Store seeded from the default checklists. Use Restore to
// install previously persisted state instead.
func New(opts Options) *Store {
	s := &Store{
		storageKey:    opts.StorageKey,
		tester:        opts.TesterName,
		detectScreens: opts.EnableScreenDetection,
		onChange:      opts.OnChange,
		now:           opts.Now,
		newID:         opts.NewID,
	}
	if s.storageKey == "" {
		s.storageKey = DefaultStorageKey
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}
	s.state = model.QAState{
		Checklists:   normalizeChecklists(opts.DefaultChecklists),
		TestSessions: []model.TestSession{},
		Bugs:         []model.BugReport{},
	}
	return s
}

// Restore replaces the whole state with a persisted snapshot, then
// reconciles it against the supplied default checklists (see Reconcile).
// The OnChange hook always fires, so restored state reaches persistence
// even when reconciliation changed nothing.
func (s *Store) Restore(persisted model.QAState, supplied []model.TestChecklist) {
	s.state = persisted.Clone()
	s.Reconcile(supplied)
	s.notify()
}

// State returns a snapshot. The snapshot is a deep copy: later mutations
// never modify it.
func (s *Store) State() model.QAState {
	return s.state.Clone()
}

// StorageKey returns the persistence key this store is bound to.
func (s *Store) StorageKey() string {
	return s.storageKey
}

// Tester returns the default tester attribution.
func (s *Store) Tester() string {
	return s.tester
}

// Toggle flips panel visibility.
func (s *Store) Toggle() {
	s.state.IsOpen = !s.state.IsOpen
	s.notify()
}

// SetOpen sets panel visibility.
func (s *Store) SetOpen(open bool) {
	if s.state.IsOpen == open {
		return
	}
	s.state.IsOpen = open
	s.notify()
}

// UpdateTestStatus sets the status and notes of the item with the given id
// and stamps its tested-at time. While a session is active, its counters are
// recomputed from scratch over the full item set. Unknown ids are a no-op.
func (s *Store) UpdateTestStatus(testID string, status model.TestStatus, notes string) {
	item := s.findItem(testID)
	if item == nil {
		return
	}
	now := s.now()
	item.Status = status
	item.Notes = notes
	item.TestedAt = &now
	s.recountSession()
	s.notify()
}

// AddTestItem appends an item to its screen's checklist, creating the
// checklist when the screen is new.
func (s *Store) AddTestItem(item model.TestItem) {
	if item.Status == "" {
		item.Status = model.StatusNotStarted
	}
	for i := range s.state.Checklists {
		if s.state.Checklists[i].Screen == item.Screen {
			s.state.Checklists[i].Items = append(s.state.Checklists[i].Items, item)
			s.recountSession()
			s.notify()
			return
		}
	}
	s.state.Checklists = append(s.state.Checklists, model.TestChecklist{
		Screen: item.Screen,
		Items:  []model.TestItem{item},
	})
	s.recountSession()
	s.notify()
}

// RemoveTestItem removes the item with the given id from whichever checklist
// holds it. Unknown ids are a no-op.
func (s *Store) RemoveTestItem(testID string) {
	for ci := range s.state.Checklists {
		items := s.state.Checklists[ci].Items
		for ii := range items {
			if items[ii].ID == testID {
				s.state.Checklists[ci].Items = append(items[:ii:ii], items[ii+1:]...)
				s.recountSession()
				s.notify()
				return
			}
		}
	}
}

// findItem returns a pointer into the live state for the item with the
// given id, or nil.
func (s *Store) findItem(testID string) *model.TestItem {
	for ci := range s.state.Checklists {
		for ii := range s.state.Checklists[ci].Items {
			if s.state.Checklists[ci].Items[ii].ID == testID {
				return &s.state.Checklists[ci].Items[ii]
			}
		}
	}
	return nil
}

// notify hands a snapshot to the OnChange hook, if any.
func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange(s.state.Clone())
	}
}

// normalizeChecklists deep-copies supplied checklists and defaults item
// status, so seed data owned by the caller is never aliased or half-formed.
func normalizeChecklists(checklists []model.TestChecklist) []model.TestChecklist {
	out := make([]model.TestChecklist, len(checklists))
	for i, cl := range checklists {
		items := make([]model.TestItem, len(cl.Items))
		copy(items, cl.Items)
		for j := range items {
			if items[j].Status == "" {
				items[j].Status = model.StatusNotStarted
			}
			if items[j].Screen == "" {
				items[j].Screen = cl.Screen
			}
		}
		out[i] = model.TestChecklist{Screen: cl.Screen, Items: items}
	}
	return out
}
