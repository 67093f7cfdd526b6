package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avaldez/qatrail/internal/scan"
	"github.com/spf13/cobra"
)

var scanRoot string

// scanCmd runs detection and prints the suggestions without writing anything.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the project and print suggested tests without writing",
	Long: `Scan runs the same detection pipeline as init but only prints the
results, including every suggested test description. Use it to preview
what init would generate.`,
	Example: `  qat scan
  qat scan --root ./frontend
  qat scan --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sum := scan.Project(scanRoot)

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sum)
		}

		printScanHeader(sum)
		if len(sum.Results) == 0 {
			fmt.Println("No screens detected.")
			return nil
		}

		color := isTTY(os.Stdout)
		for _, r := range sum.Results {
			fmt.Println()
			if r.SourceFile != "" {
				fmt.Printf("%s (%s)\n", bold(r.Screen, color), r.SourceFile)
			} else {
				fmt.Println(bold(r.Screen, color))
			}
			for _, test := range r.Tests {
				fmt.Printf("  - %s\n", test)
			}
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanRoot, "root", ".", "project root to scan")
	rootCmd.AddCommand(scanCmd)
}
