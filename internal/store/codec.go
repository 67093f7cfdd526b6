package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avaldez/qatrail/internal/model"
)

// Decode parses a serialized snapshot. Malformed JSON or a blob failing the
// structural check yields (nil, nil): callers fall back to a fresh state
// instead of refusing to start.
func Decode(blob []byte) (*model.QAState, error) {
	state, err := parseState(blob)
	if err != nil {
		return nil, nil
	}
	return state, nil
}

// parseState decodes a snapshot and applies the structural check: isOpen
// must be present and the three collections must be actual arrays. Entry
// fields are not inspected here; a hand-edited gap in one entry must not
// discard the rest of the snapshot.
func parseState(blob []byte) (*model.QAState, error) {
	var probe struct {
		IsOpen       *bool           `json:"isOpen"`
		TestSessions json.RawMessage `json:"testSessions"`
		Checklists   json.RawMessage `json:"checklists"`
		Bugs         json.RawMessage `json:"bugs"`
	}
	if err := json.Unmarshal(blob, &probe); err != nil {
		return nil, err
	}
	if probe.IsOpen == nil {
		return nil, errors.New("missing isOpen")
	}
	for name, raw := range map[string]json.RawMessage{
		"testSessions": probe.TestSessions,
		"checklists":   probe.Checklists,
		"bugs":         probe.Bugs,
	} {
		if !isJSONArray(raw) {
			return nil, fmt.Errorf("%s is not an array", name)
		}
	}

	var state model.QAState
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, err
	}
	normalize(&state)
	return &state, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// validState checks entry-level identity fields. Only explicit imports
// enforce it; Decode tolerates entry gaps.
func validState(s *model.QAState) error {
	for _, cl := range s.Checklists {
		if cl.Screen == "" {
			return errors.New("checklist with empty screen")
		}
		for _, item := range cl.Items {
			if item.ID == "" || item.Description == "" {
				return fmt.Errorf("checklist %s has an item without id or description", cl.Screen)
			}
		}
	}
	for _, bug := range s.Bugs {
		if bug.ID == "" || bug.Title == "" {
			return errors.New("bug without id or title")
		}
	}
	for _, sess := range s.TestSessions {
		if sess.ID == "" {
			return errors.New("session without id")
		}
	}
	return nil
}

// normalize backfills fields older snapshots may lack.
func normalize(s *model.QAState) {
	for ci := range s.Checklists {
		for ii := range s.Checklists[ci].Items {
			item := &s.Checklists[ci].Items[ii]
			if item.Status == "" {
				item.Status = model.StatusNotStarted
			}
			if item.Screen == "" {
				item.Screen = s.Checklists[ci].Screen
			}
		}
	}
}

// ExportToFile writes a pretty-printed snapshot to path, creating parent
// directories as needed.
func ExportToFile(path string, state model.QAState) error {
	blob, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(blob, '\n'), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ImportFromFile reads a snapshot previously written by ExportToFile. Unlike
// Decode, a file that exists but fails the structural or entry-level checks
// is an error: an explicit import of a bad file should fail loudly.
func ImportFromFile(path string) (*model.QAState, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	state, err := parseState(blob)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validState(state); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return state, nil
}
