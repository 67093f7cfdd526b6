package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/avaldez/qatrail/internal/checklist"
	"github.com/avaldez/qatrail/internal/model"
	"github.com/avaldez/qatrail/internal/qa"
	"github.com/avaldez/qatrail/internal/store"
	"github.com/spf13/cobra"
)

var clearYes bool

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the persisted QA state to a JSON file",
	Long: `Export writes the full persisted state (checklists with results,
sessions, bugs) to a JSON file for backup or transfer to another machine.`,
	Example: `  qat export qa-backup.json`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.ExportToFile(args[0], q.State()); err != nil {
			return err
		}
		fmt.Printf("Exported state to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import QA state from a JSON file",
	Long: `Import replaces the persisted state with the contents of a previously
exported file, reconciled against the current checklist artifact: results
for items whose ids still exist are kept, the rest are dropped.`,
	Example: `  qat import qa-backup.json`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imported, err := store.ImportFromFile(args[0])
		if err != nil {
			return err
		}

		db, err := store.New(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()

		doc, err := checklist.Load(checklistPath)
		if err != nil {
			return err
		}

		q := newImportStore(db)
		q.Restore(*imported, doc.Materialize())
		fmt.Printf("Imported state from %s\n", args[0])
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the persisted QA state",
	Long: `Clear removes all test results, sessions, and bugs stored under the
current storage key. The checklist artifact is untouched. Asks for
confirmation unless --yes is given.`,
	Example: `  qat clear
  qat clear --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			fmt.Printf("Delete all QA state under key %q? [y/N] ", storageKey)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		db, err := store.New(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()

		cleared, err := db.Clear(storageKey)
		if err != nil {
			return err
		}
		if !cleared {
			fmt.Println("Nothing to clear.")
			return nil
		}
		fmt.Printf("Cleared state under key %q\n", storageKey)
		return nil
	},
}

// newImportStore builds an empty qa.Store whose OnChange hook writes to db;
// Restore then installs the imported state and persists it.
func newImportStore(db *store.SQLiteStore) *qa.Store {
	return qa.New(qa.Options{
		StorageKey: storageKey,
		TesterName: testerName,
		OnChange: func(st model.QAState) {
			if err := db.Save(storageKey, st); err != nil {
				fmt.Fprintf(os.Stderr, "warning: save state: %v\n", err)
			}
		},
	})
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "skip the confirmation prompt")
	rootCmd.AddCommand(exportCmd, importCmd, clearCmd)
}
