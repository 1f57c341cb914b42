package formatter

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// termGetSize is swapped out in tests.
var termGetSize = term.GetSize

// TerminalWidth reports the column count of the terminal stdout writes to,
// falling back to $COLUMNS. Redirected output is not limited by a terminal
// on stderr or stdin. The second result is false when no width could be
// determined.
func TerminalWidth() (int, bool) {
	if w, _, err := termGetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w, true
	}
	if col := strings.TrimSpace(os.Getenv("COLUMNS")); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w, true
		}
	}
	return 0, false
}

// IsTerminal reports whether f is attached to a terminal. Styling is only
// emitted for terminals.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
