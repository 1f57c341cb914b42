package formatter

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oakwood-commons/lsx/internal/entry"
)

const (
	// cellOverhead is the "| " before and the " " after every cell.
	cellOverhead = 3
	// closingBorder is the trailing "|" of every row.
	closingBorder = 1
	separatorRune = "="
)

// Widths maps each column to its display width in terminal cells.
type Widths map[entry.Column]int

// ContractViolationError reports a record that lacks a value for an active
// column. The collector guarantees this never happens, so seeing one is a bug.
type ContractViolationError struct {
	Row    int
	Column entry.Column
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("record %d has no value for active column %q", e.Row, e.Column.Key())
}

// TableOptions configures RenderTable.
type TableOptions struct {
	// NoColor disables all styling.
	NoColor bool

	// TerminalWidth is the available width in columns; 0 means unknown and
	// the table is rendered with every requested column.
	TerminalWidth int
}

// Title upper-cases the first letter of every whitespace-separated word and
// leaves the rest of each word untouched.
func Title(s string) string {
	words := strings.Fields(s)
	caser := cases.Title(language.Und, cases.NoLower)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// ComputeWidths returns, for every column, the widest of its title and all
// record values.
func ComputeWidths(records []entry.Record, cols entry.Columns) (Widths, error) {
	widths := make(Widths, len(cols))
	for _, c := range cols {
		widths[c] = runewidth.StringWidth(Title(c.Key()))
	}
	for i, r := range records {
		for _, c := range cols {
			cell, ok := r.Value(c)
			if !ok {
				return nil, &ContractViolationError{Row: i, Column: c}
			}
			if w := runewidth.StringWidth(displayText(cell.Text)); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths, nil
}

// TableWidth is the rendered width of a row for the given columns.
func TableWidth(widths Widths, cols entry.Columns) int {
	total := closingBorder
	for _, c := range cols {
		total += widths[c] + cellOverhead
	}
	return total
}

// FitColumns drops columns, highest DropPriority first, until the table fits
// in termWidth. Columns with zero priority are always kept, even when the
// table is still too wide. A non-positive termWidth keeps every column.
func FitColumns(cols entry.Columns, widths Widths, termWidth int) (kept, dropped entry.Columns) {
	kept = append(entry.Columns(nil), cols...)
	if termWidth <= 0 {
		return kept, nil
	}
	for TableWidth(widths, kept) > termWidth {
		victim := -1
		for i, c := range kept {
			if c.DropPriority() == 0 {
				continue
			}
			if victim < 0 || c.DropPriority() > kept[victim].DropPriority() {
				victim = i
			}
		}
		if victim < 0 {
			break
		}
		dropped = append(dropped, kept[victim])
		kept = append(kept[:victim], kept[victim+1:]...)
	}
	return kept, dropped
}

// RenderTable renders records as a bordered table:
//
//	| Name       | Size   |
//	=======================
//	| readme.txt | 10 B   |
//
// The whole table is returned as one string so callers can write it in a
// single call.
func RenderTable(records []entry.Record, cols entry.Columns, opts TableOptions) (string, error) {
	widths, err := ComputeWidths(records, cols)
	if err != nil {
		return "", err
	}
	cols, _ = FitColumns(cols, widths, opts.TerminalWidth)

	var b strings.Builder

	titles := make([]entry.Cell, len(cols))
	for i, c := range cols {
		titles[i] = entry.Cell{Text: Title(c.Key())}
	}
	writeRow(&b, titles, cols, widths, opts.NoColor, headerStyle.Render)

	separator := strings.Repeat(separatorRune, TableWidth(widths, cols))
	if !opts.NoColor {
		separator = borderStyle.Render(separator)
	}
	b.WriteString(separator + "\n")

	cells := make([]entry.Cell, len(cols))
	for _, r := range records {
		for i, c := range cols {
			// presence was checked by ComputeWidths
			cells[i], _ = r.Value(c)
		}
		writeRow(&b, cells, cols, widths, opts.NoColor, nil)
	}

	return b.String(), nil
}

// writeRow writes one line. style, when non-nil, overrides the per-cell
// emphasis styling (used for the header).
func writeRow(b *strings.Builder, cells []entry.Cell, cols entry.Columns, widths Widths, noColor bool, style func(...string) string) {
	bar := "|"
	if !noColor {
		bar = borderStyle.Render(bar)
	}
	for i, c := range cols {
		b.WriteString(bar + " ")
		b.WriteString(padCell(cells[i], widths[c], noColor, style))
		b.WriteString(" ")
	}
	b.WriteString(bar + "\n")
}

// padCell pads the plain text to width before styling is applied, so escape
// sequences never count toward alignment.
func padCell(cell entry.Cell, width int, noColor bool, style func(...string) string) string {
	text := displayText(cell.Text)
	pad := width - runewidth.StringWidth(text)
	if pad < 0 {
		pad = 0
	}
	if !noColor && text != "" {
		switch {
		case style != nil:
			text = style(text)
		case cell.Emphasize:
			text = directoryStyle.Render(text)
		default:
			text = fileStyle.Render(text)
		}
	}
	return text + strings.Repeat(" ", pad)
}

// displayText replaces control characters and invalid UTF-8 with '?', the way
// ls prints names to a terminal, so a name always occupies a single line.
func displayText(s string) string {
	return strings.Map(func(r rune) rune {
		if r == utf8.RuneError || unicode.IsControl(r) {
			return '?'
		}
		return r
	}, s)
}
