// Package model defines core types for qatrail: test items, per-screen
// checklists, bug reports, test sessions, and the persisted QA aggregate.
package model

import (
	"sort"
	"strings"
	"time"
)

// TestStatus is the run status of a single test item.
type TestStatus string

const (
	StatusNotStarted TestStatus = "not_started"
	StatusPassed     TestStatus = "passed"
	StatusFailed     TestStatus = "failed"
	StatusSkipped    TestStatus = "skipped"
)

// TestCategory classifies what aspect of the screen a test exercises.
type TestCategory string

const (
	CategoryUI            TestCategory = "UI"
	CategoryFunctionality TestCategory = "Functionality"
	CategoryPerformance   TestCategory = "Performance"
	CategoryIntegration   TestCategory = "Integration"
)

// BugSeverity ranks how badly a bug impacts the application.
type BugSeverity string

const (
	SeverityCritical BugSeverity = "critical"
	SeverityHigh     BugSeverity = "high"
	SeverityMedium   BugSeverity = "medium"
	SeverityLow      BugSeverity = "low"
)

// BugStatus is the lifecycle state of a bug report.
type BugStatus string

const (
	BugOpen       BugStatus = "open"
	BugInProgress BugStatus = "in_progress"
	BugFixed      BugStatus = "fixed"
	BugWontFix    BugStatus = "wont_fix"
)

// TestItem is one test on one screen's checklist. The id is stable across
// checklist regenerations; a test run may only mutate Status, Notes, and
// TestedAt.
type TestItem struct {
	ID          string       `json:"id"`
	Screen      string       `json:"screen"`
	Category    TestCategory `json:"category"`
	Description string       `json:"description"`
	Status      TestStatus   `json:"status"`
	Notes       string       `json:"notes,omitempty"`
	TestedAt    *time.Time   `json:"testedAt,omitempty"`
}

// TestChecklist is the ordered set of test items for one screen. Screen
// names are unique within the owning collection.
type TestChecklist struct {
	Screen string     `json:"screen"`
	Items  []TestItem `json:"items"`
}

// BugReport is a structured bug filed during testing. FixedAt is set exactly
// when Status transitions into fixed.
type BugReport struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Severity         BugSeverity `json:"severity"`
	Status           BugStatus   `json:"status"`
	Screen           string      `json:"screen"`
	StepsToReproduce []string    `json:"stepsToReproduce"`
	ExpectedBehavior string      `json:"expectedBehavior"`
	ActualBehavior   string      `json:"actualBehavior"`
	ReportedAt       time.Time   `json:"reportedAt"`
	ReportedBy       string      `json:"reportedBy"`
	FixedAt          *time.Time  `json:"fixedAt,omitempty"`
}

// TestSession is one bounded testing pass. At most one session is current
// (CompletedAt nil) at a time; completing it moves it to the historical list.
type TestSession struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Tester       string     `json:"tester"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	TotalTests   int        `json:"totalTests"`
	PassedTests  int        `json:"passedTests"`
	FailedTests  int        `json:"failedTests"`
	SkippedTests int        `json:"skippedTests"`
	BugsFound    []string   `json:"bugsFound"`
	Notes        string     `json:"notes,omitempty"`
}

// QAState is the root aggregate and the unit of persistence. Every TestItem
// id is unique across Checklists; every BugsFound entry references a bug id
// that exists or once existed in Bugs.
type QAState struct {
	IsOpen         bool            `json:"isOpen"`
	CurrentSession *TestSession    `json:"currentSession"`
	TestSessions   []TestSession   `json:"testSessions"`
	Checklists     []TestChecklist `json:"checklists"`
	Bugs           []BugReport     `json:"bugs"`
}

// Clone returns a deep copy of the state. Mutating operations work on copies
// so a previously returned snapshot is never modified in place.
func (s QAState) Clone() QAState {
	out := s
	if s.CurrentSession != nil {
		cs := cloneSession(*s.CurrentSession)
		out.CurrentSession = &cs
	}
	out.TestSessions = make([]TestSession, len(s.TestSessions))
	for i, sess := range s.TestSessions {
		out.TestSessions[i] = cloneSession(sess)
	}
	out.Checklists = make([]TestChecklist, len(s.Checklists))
	for i, cl := range s.Checklists {
		items := make([]TestItem, len(cl.Items))
		copy(items, cl.Items)
		out.Checklists[i] = TestChecklist{Screen: cl.Screen, Items: items}
	}
	out.Bugs = make([]BugReport, len(s.Bugs))
	for i, b := range s.Bugs {
		steps := make([]string, len(b.StepsToReproduce))
		copy(steps, b.StepsToReproduce)
		b.StepsToReproduce = steps
		out.Bugs[i] = b
	}
	return out
}

func cloneSession(sess TestSession) TestSession {
	bugs := make([]string, len(sess.BugsFound))
	copy(bugs, sess.BugsFound)
	sess.BugsFound = bugs
	return sess
}

// Fingerprint returns a deterministic digest of a checklist set: the sorted,
// comma-joined set of all item ids. Two checklist sets with the same item
// ids fingerprint identically regardless of ordering.
func Fingerprint(checklists []TestChecklist) string {
	var ids []string
	for _, cl := range checklists {
		for _, it := range cl.Items {
			ids = append(ids, it.ID)
		}
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
