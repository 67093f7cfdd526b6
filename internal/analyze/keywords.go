package analyze

import "strings"

// keywordCategory maps a set of trigger keywords to a canned test list. Used
// as the fallback when structural extraction found nothing to work with.
type keywordCategory struct {
	keywords []string
	tests    []string
}

var keywordCategories = []keywordCategory{
	{
		keywords: []string{"form", "submit", "onsubmit"},
		tests:    formTests,
	},
	{
		keywords: []string{"login", "signin", "signup", "register", "auth", "password"},
		tests: []string{
			"Log in with valid credentials",
			"Verify an error is shown for invalid credentials",
			"Verify the session persists after a page reload",
		},
	},
	{
		keywords: []string{"list", "table", "grid", "map(", ".map("},
		tests: []string{
			"Verify the list renders all expected entries",
			"Verify the empty state is shown when there is no data",
		},
	},
	{
		keywords: []string{"detail", "profile", "view", ":id"},
		tests: []string{
			"Verify detail fields match the selected entry",
			"Verify navigating back preserves the originating list state",
		},
	},
	{
		keywords: []string{"settings", "preferences", "config"},
		tests: []string{
			"Change a setting and verify it takes effect",
			"Verify settings persist after a page reload",
		},
	},
	{
		keywords: []string{"dashboard", "overview", "stats", "chart"},
		tests: []string{
			"Verify dashboard widgets all render with data",
			"Verify dashboard numbers are consistent with their detail screens",
		},
	},
}

// FallbackSuggest produces keyword-driven suggestions from raw source text
// and a file or screen name, for components where the structural analyzer
// found nothing. The baseline load test always comes first.
func FallbackSuggest(name, src string) []string {
	haystack := strings.ToLower(name + " " + src)
	tests := []string{BaselineTest}

	for _, cat := range keywordCategories {
		if hasAny(haystack, cat.keywords) {
			tests = append(tests, cat.tests...)
		}
	}

	// Ad hoc checks for common interaction keywords.
	if strings.Contains(haystack, "button") || strings.Contains(haystack, "onclick") {
		tests = append(tests, "Click every visible button and verify no console errors")
	}
	if hasAny(haystack, featureFlags["fetch"]) {
		tests = append(tests, "Verify data loads from the backend on screen entry")
	}
	if hasAny(haystack, []string{"modal", "dialog", "drawer"}) {
		tests = append(tests, "Open and close every overlay and verify the page state is unchanged")
	}
	if hasAny(haystack, []string{"navigate", "router", "href", "link"}) {
		tests = append(tests, "Verify all navigation targets resolve without errors")
	}

	return dedupeOrdered(tests)
}
