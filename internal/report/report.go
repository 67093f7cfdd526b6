// Package report renders a QA state snapshot as a Markdown document.
package report

import (
	"fmt"
	"strings"

	"github.com/avaldez/qatrail/internal/model"
)

// statusGlyphs mark each test result in the per-screen listing.
var statusGlyphs = map[model.TestStatus]string{
	model.StatusPassed:     "✅",
	model.StatusFailed:     "❌",
	model.StatusSkipped:    "⏭️",
	model.StatusNotStarted: "⬜",
}

// Render produces a Markdown test report for the current session. With no
// current session it emits a fixed placeholder document.
func Render(state model.QAState) string {
	sess := state.CurrentSession
	if sess == nil {
		return "# QA Test Report\n\nNo active test session.\n"
	}

	var b strings.Builder
	b.WriteString("# QA Test Report\n\n")
	fmt.Fprintf(&b, "**Session:** %s\n", sess.Name)
	fmt.Fprintf(&b, "**Tester:** %s\n", sess.Tester)
	fmt.Fprintf(&b, "**Started:** %s\n", sess.StartedAt.Format("2006-01-02 15:04"))
	if sess.CompletedAt != nil {
		fmt.Fprintf(&b, "**Completed:** %s\n", sess.CompletedAt.Format("2006-01-02 15:04"))
	} else {
		b.WriteString("**Completed:** In Progress\n")
	}

	bugs := sessionBugs(state, sess)

	b.WriteString("\n## Summary\n\n")
	fmt.Fprintf(&b, "- Total tests: %d\n", sess.TotalTests)
	fmt.Fprintf(&b, "- Passed: %d\n", sess.PassedTests)
	fmt.Fprintf(&b, "- Failed: %d\n", sess.FailedTests)
	fmt.Fprintf(&b, "- Skipped: %d\n", sess.SkippedTests)
	fmt.Fprintf(&b, "- Bugs found: %d\n", len(bugs))

	for _, cl := range state.Checklists {
		fmt.Fprintf(&b, "\n## %s\n\n", cl.Screen)
		for _, item := range cl.Items {
			glyph, ok := statusGlyphs[item.Status]
			if !ok {
				glyph = statusGlyphs[model.StatusNotStarted]
			}
			fmt.Fprintf(&b, "- %s %s\n", glyph, item.Description)
			if item.Notes != "" {
				fmt.Fprintf(&b, "  - Note: %s\n", item.Notes)
			}
		}
	}

	if len(bugs) > 0 {
		b.WriteString("\n## Bugs\n")
		for i, bug := range bugs {
			fmt.Fprintf(&b, "\n### %d. %s\n\n", i+1, bug.Title)
			fmt.Fprintf(&b, "- Severity: %s\n", bug.Severity)
			fmt.Fprintf(&b, "- Status: %s\n", bug.Status)
			if bug.Screen != "" {
				fmt.Fprintf(&b, "- Screen: %s\n", bug.Screen)
			}
			fmt.Fprintf(&b, "- Description: %s\n", bug.Description)
			if bug.ExpectedBehavior != "" {
				fmt.Fprintf(&b, "- Expected: %s\n", bug.ExpectedBehavior)
			}
			if bug.ActualBehavior != "" {
				fmt.Fprintf(&b, "- Actual: %s\n", bug.ActualBehavior)
			}
			if len(bug.StepsToReproduce) > 0 {
				b.WriteString("- Steps to reproduce:\n")
				for j, step := range bug.StepsToReproduce {
					fmt.Fprintf(&b, "  %d. %s\n", j+1, step)
				}
			}
		}
	}

	if sess.Notes != "" {
		fmt.Fprintf(&b, "\n## Session Notes\n\n%s\n", sess.Notes)
	}

	return b.String()
}

// sessionBugs resolves a session's found-bug ids against the bug collection,
// keeping report order. Ids whose bug was deleted are skipped.
func sessionBugs(state model.QAState, sess *model.TestSession) []model.BugReport {
	byID := make(map[string]model.BugReport, len(state.Bugs))
	for _, bug := range state.Bugs {
		byID[bug.ID] = bug
	}
	var out []model.BugReport
	for _, id := range sess.BugsFound {
		if bug, ok := byID[id]; ok {
			out = append(out, bug)
		}
	}
	return out
}
