// Package cli defines the cobra command tree for the qat CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/avaldez/qatrail/internal/checklist"
	"github.com/avaldez/qatrail/internal/config"
	"github.com/avaldez/qatrail/internal/model"
	"github.com/avaldez/qatrail/internal/qa"
	"github.com/avaldez/qatrail/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath        string
	jsonOutput    bool
	storageKey    string
	testerName    string
	checklistPath string
)

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "qa.db"
	}
	return filepath.Join(home, ".qatrail", "qa.db")
}

// rootCmd is the top-level qat command.
var rootCmd = &cobra.Command{
	Use:   "qat",
	Short: "QA Trail - checklist tracking and heuristic test generation for web front-ends",
	Long: `qat scans a web project's source tree (router configuration, directory
conventions, component markup) and generates a per-screen QA checklist.
Testers then work through the checklist: start sessions, mark tests
pass/fail/skip, file bug reports, and export a Markdown test report.

Checklist definitions live in a committed YAML artifact (qa.checklists.yaml);
test results persist in a SQLite database at ~/.qatrail/qa.db (configurable
via --db flag or qat config db_path). Regenerating the checklist keeps prior
results for items whose ids are unchanged. All output commands support --json
for machine-readable output.`,
	Example: `  # Generate a checklist from the project in the current directory
  qat init

  # Run a test session
  qat session start "release 1.4" --tester ana
  qat test pass home_001
  qat test fail home_002 --notes "save button does nothing"
  qat bug report "Save button dead" --severity high --screen HOME
  qat session complete --notes "stopped at checkout"

  # Export the report
  qat report > qa-report.md`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadFrom(configPath)
		if err != nil {
			return
		}
		if cfg.DBPath != "" && !cmd.Flags().Changed("db") {
			dbPath = cfg.DBPath
		}
		if cfg.StorageKey != "" && !cmd.Flags().Changed("key") {
			storageKey = cfg.StorageKey
		}
		if cfg.TesterName != "" && testerName == "" {
			testerName = cfg.TesterName
		}
		if cfg.ChecklistPath != "" && !cmd.Flags().Changed("checklist") {
			checklistPath = cfg.ChecklistPath
		}
		if cfg.DefaultFormat == "json" && !cmd.Flags().Changed("json") {
			jsonOutput = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath(), "path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&storageKey, "key", qa.DefaultStorageKey, "storage key the state is persisted under")
	rootCmd.PersistentFlags().StringVar(&checklistPath, "checklist", checklist.DefaultPath, "path to the checklist YAML artifact")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
}

// openQA opens the database and builds a qa.Store bound to the storage key:
// the checklist artifact provides the seed items, any persisted snapshot is
// restored and reconciled against them, and every mutation is saved back.
// The caller must Close the returned database handle.
func openQA() (*store.SQLiteStore, *qa.Store, error) {
	db, err := store.New(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	doc, err := checklist.Load(checklistPath)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	seed := doc.Materialize()

	persisted, err := db.Load(storageKey)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	q := qa.New(qa.Options{
		DefaultChecklists: seed,
		StorageKey:        storageKey,
		TesterName:        testerName,
		OnChange: func(st model.QAState) {
			if saveErr := db.Save(storageKey, st); saveErr != nil {
				fmt.Fprintf(os.Stderr, "warning: save state: %v\n", saveErr)
			}
		},
	})
	if persisted != nil {
		q.Restore(*persisted, seed)
	}
	return db, q, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
