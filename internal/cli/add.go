package cli

import (
	"fmt"
	"strings"

	"github.com/avaldez/qatrail/internal/checklist"
	"github.com/avaldez/qatrail/internal/screen"
	"github.com/spf13/cobra"
)

// addCmd appends a screen to the checklist artifact.
var addCmd = &cobra.Command{
	Use:   "add <screen-name>",
	Short: "Add a screen to the checklist artifact",
	Long: `Add normalizes a screen name (route path, component file name, or free
text) to its canonical form and appends it to the checklist artifact,
seeded with the baseline load test. Edit the artifact to flesh out the
screen's tests.`,
	Example: `  qat add checkout
  qat add /users/:id
  qat add UserProfilePage.tsx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := normalizeScreenArg(args[0])

		doc, err := checklist.Load(checklistPath)
		if err != nil {
			return err
		}
		if !checklist.AddScreen(&doc, name) {
			return fmt.Errorf("screen %s already exists in %s", name, checklistPath)
		}
		if err := checklist.Write(checklistPath, doc); err != nil {
			return err
		}
		fmt.Printf("Added %s to %s\n", name, checklistPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}

// normalizeScreenArg picks the derivation that fits the argument's shape:
// route-like input goes through path derivation, anything else is treated
// as a component or file name.
func normalizeScreenArg(arg string) string {
	if strings.ContainsAny(arg, "/:") {
		return screen.Derive(arg)
	}
	return screen.FromFile(arg)
}
