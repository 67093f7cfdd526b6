package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	sessionTester string
	sessionNotes  string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage test sessions",
	Long: `A test session groups one pass over the checklist: starting a session
resets every item to not started, completing it archives the counters and
any bugs found along the way.`,
}

var sessionStartCmd = &cobra.Command{
	Use:   "start <name>",
	Short: "Start a new test session",
	Long: `Start resets all checklist items and begins a new session. An
unfinished session is replaced, not archived. The tester defaults to
the configured tester_name.`,
	Example: `  qat session start "release 1.4" --tester ana
  qat session start smoke`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if name == "" {
			return fmt.Errorf("session name must not be empty")
		}
		tester := sessionTester
		if tester == "" {
			tester = testerName
		}
		if tester == "" {
			return fmt.Errorf("no tester given; use --tester or: qat config set tester_name <name>")
		}

		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		sess := q.StartSession(name, tester)
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sess)
		}
		fmt.Printf("Started session %q (%s) with %d tests\n", sess.Name, sess.ID, sess.TotalTests)
		return nil
	},
}

var sessionCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete the current test session",
	Example: `  qat session complete
  qat session complete --notes "stopped at checkout, rest next week"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		state := q.State()
		if state.CurrentSession == nil {
			return fmt.Errorf("no active session")
		}
		q.CompleteSession(sessionNotes)

		done := q.State().TestSessions
		sess := done[len(done)-1]
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sess)
		}
		fmt.Printf("Completed session %q: %d/%d passed, %d failed, %d skipped, %d bugs\n",
			sess.Name, sess.PassedTests, sess.TotalTests, sess.FailedTests,
			sess.SkippedTests, len(sess.BugsFound))
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current and historical sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		state := q.State()
		if jsonOutput {
			out := struct {
				Current  any `json:"current"`
				Sessions any `json:"sessions"`
			}{state.CurrentSession, state.TestSessions}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		if state.CurrentSession == nil && len(state.TestSessions) == 0 {
			fmt.Println("No sessions.")
			return nil
		}

		t := NewTable(os.Stdout, "ID", "NAME", "TESTER", "STARTED", "STATUS", "PASS/TOTAL")
		if sess := state.CurrentSession; sess != nil {
			t.Row(sess.ID, truncate(sess.Name, 30), sess.Tester,
				sess.StartedAt.Format("2006-01-02 15:04"), "in progress",
				fmt.Sprintf("%d/%d", sess.PassedTests, sess.TotalTests))
		}
		for i := len(state.TestSessions) - 1; i >= 0; i-- {
			sess := state.TestSessions[i]
			t.Row(sess.ID, truncate(sess.Name, 30), sess.Tester,
				sess.StartedAt.Format("2006-01-02 15:04"), "completed",
				fmt.Sprintf("%d/%d", sess.PassedTests, sess.TotalTests))
		}
		return t.Flush()
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a historical session",
	Long:  `Delete removes a completed session from history. The current session cannot be deleted; complete it first.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		if !q.DeleteSession(args[0]) {
			return fmt.Errorf("no historical session with id %s", args[0])
		}
		fmt.Printf("Deleted session %s\n", args[0])
		return nil
	},
}

func init() {
	sessionStartCmd.Flags().StringVar(&sessionTester, "tester", "", "tester name (defaults to configured tester_name)")
	sessionCompleteCmd.Flags().StringVar(&sessionNotes, "notes", "", "closing notes for the session")
	sessionCmd.AddCommand(sessionStartCmd, sessionCompleteCmd, sessionListCmd, sessionDeleteCmd)
	rootCmd.AddCommand(sessionCmd)
}
