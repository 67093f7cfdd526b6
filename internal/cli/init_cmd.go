package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avaldez/qatrail/internal/checklist"
	"github.com/avaldez/qatrail/internal/routes"
	"github.com/avaldez/qatrail/internal/scan"
	"github.com/spf13/cobra"
)

var initRoot string

// initCmd scans the project and writes the checklist artifact.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scan the project and generate the checklist artifact",
	Long: `Init detects the project's screens (router configuration files first,
then pages/app directory conventions), analyzes each screen's component
source for UI structure, and writes a per-screen test checklist to the
YAML artifact.

The artifact is meant to be committed and edited by hand. Item ids are
stable across regenerations, so re-running init after adding screens keeps
prior test results for unchanged items.

Detecting no screens is not an error: the artifact is still written empty
and guidance is printed.`,
	Example: `  qat init
  qat init --root ./frontend
  qat init --checklist qa/checklists.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sum := scan.Project(initRoot)
		doc := checklist.Build(sum.Results)
		if err := checklist.Write(checklistPath, doc); err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sum)
		}

		printScanHeader(sum)
		if len(sum.Results) == 0 {
			fmt.Println("No screens detected. Add screens manually with: qat add <screen-name>")
			fmt.Printf("Wrote empty checklist artifact to %s\n", checklistPath)
			return nil
		}

		t := NewTable(os.Stdout, "SCREEN", "SOURCE", "TESTS")
		for _, r := range sum.Results {
			src := r.SourceFile
			if src == "" {
				src = "-"
			}
			t.Row(r.Screen, src, fmt.Sprintf("%d", len(r.Tests)))
		}
		if err := t.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nWrote %d checklists to %s\n", len(sum.Results), checklistPath)
		fmt.Println("Next steps:")
		fmt.Println("  qat session start \"<session name>\" --tester <name>")
		fmt.Println("  qat test list")
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initRoot, "root", ".", "project root to scan")
	rootCmd.AddCommand(initCmd)
}

func printScanHeader(sum scan.Summary) {
	switch sum.Kind {
	case routes.KindNone:
		fmt.Println("Detection: no router configuration or page directories found")
	case routes.KindPages, routes.KindApp:
		fmt.Printf("Detection: %s directory convention\n", sum.Kind)
	default:
		fmt.Printf("Detection: %s (%s)\n", sum.Kind, sum.SourceFile)
	}
}
