package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"
)

const defaultTermWidth = 80

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// getTermWidth returns the terminal width of stdout, or defaultTermWidth
// when the size cannot be determined.
func getTermWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTermWidth
}

// bold wraps s in ANSI bold escapes when color is on.
func bold(s string, color bool) string {
	if !color {
		return s
	}
	return "\033[1m" + s + "\033[0m"
}

// truncate shortens s to at most max characters, appending "..." when text
// was cut. Counts runes, not bytes, so multibyte names are not split.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max < 4 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// Table aligns columns with text/tabwriter. Every list-style command renders
// through it so spacing stays uniform; the header row is bold on a TTY.
type Table struct {
	tw    *tabwriter.Writer
	color bool
}

// NewTable creates a Table writing to w and emits the header row, if any.
func NewTable(w io.Writer, headers ...string) *Table {
	t := &Table{
		tw:    tabwriter.NewWriter(w, 0, 4, 2, ' ', 0),
		color: isTTY(w),
	}
	if len(headers) > 0 {
		t.Row(boldAll(headers, t.color)...)
	}
	return t
}

// Row writes one tab-separated data row.
func (t *Table) Row(vals ...string) {
	fmt.Fprintln(t.tw, strings.Join(vals, "\t"))
}

// Flush flushes buffered rows to the underlying writer.
func (t *Table) Flush() error {
	return t.tw.Flush()
}

func boldAll(vals []string, color bool) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = bold(v, color)
	}
	return out
}
