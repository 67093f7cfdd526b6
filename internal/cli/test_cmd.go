package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/avaldez/qatrail/internal/model"
	"github.com/spf13/cobra"
)

var (
	testNotes  string
	testScreen string
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Mark checklist tests and list their results",
}

// statusFromVerb maps the subcommand name to the resulting status.
var statusFromVerb = map[string]model.TestStatus{
	"pass": model.StatusPassed,
	"fail": model.StatusFailed,
	"skip": model.StatusSkipped,
}

func markTest(verb string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		id := args[0]
		if !testExists(q.State(), id) {
			if near := nearestTestIDs(q.State(), id); len(near) > 0 {
				return fmt.Errorf("no test with id %s (did you mean %s?)", id, strings.Join(near, ", "))
			}
			return fmt.Errorf("no test with id %s (see: qat test list)", id)
		}
		q.UpdateTestStatus(id, statusFromVerb[verb], testNotes)
		fmt.Printf("%s: %s\n", id, statusFromVerb[verb])
		return nil
	}
}

func testExists(state model.QAState, id string) bool {
	for _, cl := range state.Checklists {
		for _, item := range cl.Items {
			if item.ID == id {
				return true
			}
		}
	}
	return false
}

var testPassCmd = &cobra.Command{
	Use:     "pass <test-id>",
	Short:   "Mark a test as passed",
	Example: `  qat test pass home_001`,
	Args:    cobra.ExactArgs(1),
	RunE:    markTest("pass"),
}

var testFailCmd = &cobra.Command{
	Use:     "fail <test-id>",
	Short:   "Mark a test as failed",
	Example: `  qat test fail home_002 --notes "save button does nothing"`,
	Args:    cobra.ExactArgs(1),
	RunE:    markTest("fail"),
}

var testSkipCmd = &cobra.Command{
	Use:     "skip <test-id>",
	Short:   "Mark a test as skipped",
	Example: `  qat test skip users_003 --notes "staging only"`,
	Args:    cobra.ExactArgs(1),
	RunE:    markTest("skip"),
}

// testGlyphs mark statuses in the list view.
var testGlyphs = map[model.TestStatus]string{
	model.StatusPassed:     "✓",
	model.StatusFailed:     "✗",
	model.StatusSkipped:    "→",
	model.StatusNotStarted: " ",
}

var testListCmd = &cobra.Command{
	Use:   "list",
	Short: "List checklist tests and their current status",
	Example: `  qat test list
  qat test list --screen HOME
  qat test list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		state := q.State()
		var checklists []model.TestChecklist
		for _, cl := range state.Checklists {
			if testScreen == "" || cl.Screen == testScreen {
				checklists = append(checklists, cl)
			}
		}
		if testScreen != "" && len(checklists) == 0 {
			return fmt.Errorf("no checklist for screen %s", testScreen)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(checklists)
		}

		if len(checklists) == 0 {
			fmt.Println("No checklists. Generate one with: qat init")
			return nil
		}

		color := isTTY(os.Stdout)
		for _, cl := range checklists {
			fmt.Println(bold(cl.Screen, color))
			for _, item := range cl.Items {
				fmt.Printf("  [%s] %s  %s\n", testGlyphs[item.Status], item.ID, item.Description)
				if item.Notes != "" {
					fmt.Printf("        note: %s\n", item.Notes)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{testPassCmd, testFailCmd, testSkipCmd} {
		c.Flags().StringVar(&testNotes, "notes", "", "notes to record with the result")
	}
	testListCmd.Flags().StringVar(&testScreen, "screen", "", "only list one screen's checklist")
	testCmd.AddCommand(testPassCmd, testFailCmd, testSkipCmd, testListCmd)
	rootCmd.AddCommand(testCmd)
}
