package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avaldez/qatrail/internal/model"
	"github.com/spf13/cobra"
)

var (
	bugDescription string
	bugSeverity    string
	bugScreen      string
	bugSteps       []string
	bugExpected    string
	bugActual      string
	bugStatusValue string
	bugShowAll     bool
)

var bugCmd = &cobra.Command{
	Use:   "bug",
	Short: "File and track bug reports",
}

// severities and bugStatuses gate user input at the boundary; the state
// machine itself accepts whatever it is handed.
var severities = map[string]model.BugSeverity{
	"critical": model.SeverityCritical,
	"high":     model.SeverityHigh,
	"medium":   model.SeverityMedium,
	"low":      model.SeverityLow,
}

var bugStatuses = map[string]model.BugStatus{
	"open":        model.BugOpen,
	"in_progress": model.BugInProgress,
	"fixed":       model.BugFixed,
	"wont_fix":    model.BugWontFix,
}

var bugReportCmd = &cobra.Command{
	Use:   "report <title>",
	Short: "File a new bug report",
	Long: `Report files a bug. If a session is active the bug is linked to it and
appears in the session's report. Severity defaults to medium.`,
	Example: `  qat bug report "Save button dead" --desc "No effect on click" --severity high --screen HOME
  qat bug report "Crash on load" --desc "Panic in console" --severity critical \
      --step "open the app" --step "wait 5 seconds"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		if title == "" {
			return fmt.Errorf("bug title must not be empty")
		}
		if bugDescription == "" {
			return fmt.Errorf("bug description must not be empty; use --desc")
		}
		severity, ok := severities[bugSeverity]
		if !ok {
			return fmt.Errorf("invalid severity %q (use critical, high, medium, or low)", bugSeverity)
		}

		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		id := q.ReportBug(model.BugReport{
			Title:            title,
			Description:      bugDescription,
			Severity:         severity,
			Screen:           bugScreen,
			StepsToReproduce: bugSteps,
			ExpectedBehavior: bugExpected,
			ActualBehavior:   bugActual,
		})
		fmt.Printf("Filed bug %s\n", id)
		return nil
	},
}

var bugStatusCmd = &cobra.Command{
	Use:   "status <bug-id> <status>",
	Short: "Change a bug's status",
	Long: `Status moves a bug through its lifecycle: open, in_progress, fixed, or
wont_fix. Marking a bug fixed records the fix time.`,
	Example: `  qat bug status 4f6b fixed
  qat bug status 4f6b wont_fix`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, ok := bugStatuses[args[1]]
		if !ok {
			return fmt.Errorf("invalid status %q (use open, in_progress, fixed, or wont_fix)", args[1])
		}

		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := resolveBugID(q.State(), args[0])
		if err != nil {
			return err
		}
		q.UpdateBugStatus(id, status)
		fmt.Printf("%s: %s\n", id, status)
		return nil
	},
}

var bugFixCmd = &cobra.Command{
	Use:     "fix <bug-id>",
	Short:   "Mark a bug as fixed",
	Example: `  qat bug fix 4f6b`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := resolveBugID(q.State(), args[0])
		if err != nil {
			return err
		}
		q.UpdateBugStatus(id, model.BugFixed)
		fmt.Printf("%s: fixed\n", id)
		return nil
	},
}

var bugListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bug reports",
	Long:  `List shows open and in-progress bugs by default; --all includes fixed and wont-fix bugs.`,
	Example: `  qat bug list
  qat bug list --all
  qat bug list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		var bugs []model.BugReport
		for _, bug := range q.State().Bugs {
			if bugShowAll || bug.Status == model.BugOpen || bug.Status == model.BugInProgress {
				bugs = append(bugs, bug)
			}
		}

		if jsonOutput {
			if bugs == nil {
				bugs = []model.BugReport{}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(bugs)
		}

		if len(bugs) == 0 {
			fmt.Println("No bugs.")
			return nil
		}

		t := NewTable(os.Stdout, "ID", "SEVERITY", "STATUS", "SCREEN", "TITLE")
		for _, bug := range bugs {
			screen := bug.Screen
			if screen == "" {
				screen = "-"
			}
			t.Row(shortID(bug.ID), string(bug.Severity), string(bug.Status), screen, truncate(bug.Title, 50))
		}
		return t.Flush()
	},
}

var bugDeleteCmd = &cobra.Command{
	Use:     "delete <bug-id>",
	Short:   "Delete a bug report",
	Example: `  qat bug delete 4f6b`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := resolveBugID(q.State(), args[0])
		if err != nil {
			return err
		}
		q.DeleteBug(id)
		fmt.Printf("Deleted bug %s\n", id)
		return nil
	},
}

// resolveBugID accepts a full bug id or an unambiguous prefix.
func resolveBugID(state model.QAState, arg string) (string, error) {
	var matches []string
	for _, bug := range state.Bugs {
		if bug.ID == arg {
			return arg, nil
		}
		if len(arg) >= 4 && len(arg) < len(bug.ID) && bug.ID[:len(arg)] == arg {
			matches = append(matches, bug.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no bug with id %s (see: qat bug list)", arg)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("bug id prefix %s is ambiguous (%d matches)", arg, len(matches))
	}
}

// shortID abbreviates a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	bugReportCmd.Flags().StringVar(&bugDescription, "desc", "", "bug description (required)")
	bugReportCmd.Flags().StringVar(&bugSeverity, "severity", "medium", "severity: critical, high, medium, or low")
	bugReportCmd.Flags().StringVar(&bugScreen, "screen", "", "screen the bug was found on")
	bugReportCmd.Flags().StringArrayVar(&bugSteps, "step", nil, "reproduction step (repeatable, in order)")
	bugReportCmd.Flags().StringVar(&bugExpected, "expected", "", "expected behavior")
	bugReportCmd.Flags().StringVar(&bugActual, "actual", "", "actual behavior")
	bugListCmd.Flags().BoolVar(&bugShowAll, "all", false, "include fixed and wont-fix bugs")
	bugCmd.AddCommand(bugReportCmd, bugStatusCmd, bugFixCmd, bugListCmd, bugDeleteCmd)
	rootCmd.AddCommand(bugCmd)
}
