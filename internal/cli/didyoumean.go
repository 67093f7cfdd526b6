package cli

import (
	"sort"

	"github.com/avaldez/qatrail/internal/model"
)

// maxSuggestDistance caps how far an id may be, in edits, before it is not
// worth suggesting.
const maxSuggestDistance = 3

// nearestTestIDs returns up to three known test ids closest to id by edit
// distance, nearest first. Ties break alphabetically.
func nearestTestIDs(state model.QAState, id string) []string {
	type candidate struct {
		id   string
		dist int
	}
	var cands []candidate
	for _, cl := range state.Checklists {
		for _, item := range cl.Items {
			d := editDistance(id, item.ID)
			if d <= maxSuggestDistance {
				cands = append(cands, candidate{item.ID, d})
			}
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].id < cands[j].id
	})
	var out []string
	for _, c := range cands {
		out = append(out, c.id)
		if len(out) == 3 {
			break
		}
	}
	return out
}

// editDistance computes the Levenshtein distance between a and b using a
// single-row table.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr := make([]int, len(b)+1)
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minOf(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev = curr
	}
	return prev[len(b)]
}

func minOf(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
