package qa

import "strings"

// rootScreens are preferred, in order, when the current path is the root.
var rootScreens = []string{"HOME", "DASHBOARD", "MAIN"}

// OverrideScreen pins the current screen manually: MatchScreen returns this
// name until cleared with an empty string.
func (s *Store) OverrideScreen(name string) {
	s.screenOverride = name
}

// MatchScreen resolves a location path or hash to a checklist screen name.
// A manual override wins; with detection disabled and no override the result
// is empty. The root path resolves to HOME, DASHBOARD, or MAIN when such a
// checklist exists, else the first checklist's screen. Any other path is
// matched case- and hyphen-insensitively against each screen name, first
// checklist wins. No match yields "".
func (s *Store) MatchScreen(path string) string {
	if s.screenOverride != "" {
		return s.screenOverride
	}
	if !s.detectScreens || len(s.state.Checklists) == 0 {
		return ""
	}

	trimmed := strings.TrimPrefix(strings.TrimPrefix(path, "#"), "/")
	if trimmed == "" {
		for _, want := range rootScreens {
			for _, cl := range s.state.Checklists {
				if cl.Screen == want {
					return want
				}
			}
		}
		return s.state.Checklists[0].Screen
	}

	normPath := normalizeMatch(path)
	for _, cl := range s.state.Checklists {
		if strings.Contains(normPath, normalizeMatch(cl.Screen)) {
			return cl.Screen
		}
	}
	return ""
}

// normalizeMatch lowercases and strips separators so USER_PROFILE matches
// /user-profile.
func normalizeMatch(s string) string {
	s = strings.ToLower(s)
	for _, sep := range []string{"-", "_", "/", "#"} {
		s = strings.ReplaceAll(s, sep, "")
	}
	return s
}
