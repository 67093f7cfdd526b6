package analyze

import (
	"fmt"
	"strings"
)

// BaselineTest is always the first suggestion for any screen.
const BaselineTest = "Screen loads without errors"

// destructiveWords flag button labels that should be guarded by a
// confirmation dialog.
var destructiveWords = []string{"delete", "remove", "clear", "reset", "destroy", "discard"}

// formTests are the generic tests every native form gets.
var formTests = []string{
	"Submit the form with valid data",
	"Submit the form with invalid data and verify validation messages",
	"Verify all form fields accept and retain input",
}

// Suggest turns the structural facts of an analysis into an ordered,
// deduplicated list of test descriptions for a screen. The baseline load
// test always comes first.
func Suggest(screenName string, a ComponentAnalysis) []string {
	tests := []string{BaselineTest}

	for _, label := range a.Buttons {
		tests = append(tests, fmt.Sprintf("Click %q button and verify the expected action occurs", label))
		if isDestructive(label) {
			tests = append(tests, fmt.Sprintf("Verify a confirmation dialog appears before %q completes", label))
		}
	}

	for _, in := range a.Inputs {
		name := inputDisplayName(in)
		tests = append(tests, fmt.Sprintf("Enter valid input in %q field", name))
		if in.Required {
			tests = append(tests, fmt.Sprintf("Verify a validation error when %q field is left empty", name))
		}
		if t := typedInputTest(in.Type, name); t != "" {
			tests = append(tests, t)
		}
	}

	for _, sel := range a.Selects {
		name := sel.Name
		if name == "" {
			name = "dropdown"
		}
		if len(sel.Options) > 0 {
			tests = append(tests, fmt.Sprintf("Select each of the %d options in %q and verify the view updates", len(sel.Options), name))
		} else {
			tests = append(tests, fmt.Sprintf("Select each option in %q and verify the view updates", name))
		}
	}

	for _, target := range a.Links {
		tests = append(tests, fmt.Sprintf("Verify navigation to %s works", target))
	}

	for _, label := range a.Modals {
		tests = append(tests, fmt.Sprintf("Open and close %q and verify focus returns to the trigger", label))
	}

	if len(a.Forms) > 0 {
		tests = append(tests, formTests...)
	}

	tests = append(tests, flagTests(a)...)
	return dedupeOrdered(tests)
}

// typedInputTest returns the validation test for a typed input, or "" for
// plain text fields.
func typedInputTest(typ, name string) string {
	switch strings.ToLower(typ) {
	case "email":
		return fmt.Sprintf("Verify invalid email format is rejected in %q field", name)
	case "password":
		return fmt.Sprintf("Verify %q field masks input and enforces minimum length", name)
	case "number":
		return fmt.Sprintf("Verify non-numeric input is rejected in %q field", name)
	case "tel", "phone":
		return fmt.Sprintf("Verify phone number format validation in %q field", name)
	}
	return ""
}

// flagTests emits one or two tests per boolean feature flag.
func flagTests(a ComponentAnalysis) []string {
	var tests []string
	if a.HasTable {
		tests = append(tests,
			"Verify table data renders correctly",
			"Verify table sorting works on sortable columns")
	}
	if a.HasPagination {
		tests = append(tests, "Navigate between pages and verify page contents change")
	}
	if a.HasSearch {
		tests = append(tests, "Search with matching and non-matching terms and verify results")
	}
	if a.FetchesData {
		tests = append(tests, "Verify data loads from the backend on screen entry")
	}
	if a.HasLoadingState {
		tests = append(tests, "Verify a loading indicator appears while data is loading")
	}
	if a.HasErrorState {
		tests = append(tests, "Verify an error message is shown when loading fails")
	}
	if a.HasEmptyState {
		tests = append(tests, "Verify the empty state is shown when there is no data")
	}
	return tests
}

func inputDisplayName(in Input) string {
	if in.Name != "" {
		return in.Name
	}
	if in.Placeholder != "" {
		return in.Placeholder
	}
	return in.Type
}

func isDestructive(label string) bool {
	lower := strings.ToLower(label)
	for _, w := range destructiveWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// dedupeOrdered removes exact duplicates, keeping first occurrences.
func dedupeOrdered(tests []string) []string {
	seen := make(map[string]bool, len(tests))
	var out []string
	for _, t := range tests {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
