// Package formatter renders directory records as a bordered text table.
package formatter

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	defaultDirectoryColor = lipgloss.Color("12")
	defaultFileColor      = lipgloss.Color("10")
	defaultHeaderColor    = lipgloss.Color("15")
	defaultBorderColor    = lipgloss.Color("240")

	headerStyle    lipgloss.Style
	directoryStyle lipgloss.Style
	fileStyle      lipgloss.Style
	borderStyle    lipgloss.Style
)

// TableColors controls the rendered colors of the table.
// Nil fields fall back to the defaults (ANSI 256 codes).
type TableColors struct {
	Directory color.Color
	File      color.Color
	Header    color.Color
	Border    color.Color
}

func applyTableTheme(tc TableColors) {
	dir, file, header, border := tc.Directory, tc.File, tc.Header, tc.Border
	if dir == nil {
		dir = defaultDirectoryColor
	}
	if file == nil {
		file = defaultFileColor
	}
	if header == nil {
		header = defaultHeaderColor
	}
	if border == nil {
		border = defaultBorderColor
	}

	// Cells are padded before styling; Render must not change their width.
	base := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	headerStyle = base.Bold(true).Foreground(header)
	directoryStyle = base.Bold(true).Foreground(dir)
	fileStyle = base.Foreground(file)
	borderStyle = base.Foreground(border)
}

// SetTableTheme overrides the table styles. Zero-valued fields fall back to
// the defaults.
func SetTableTheme(tc TableColors) {
	applyTableTheme(tc)
}

// ParseColor converts a config color string (ANSI index or "#rrggbb") to a
// color, returning nil for the empty string so defaults apply.
func ParseColor(s string) color.Color {
	if s == "" {
		return nil
	}
	return lipgloss.Color(s)
}

//nolint:gochecknoinits // initialize default table theme for package consumers
func init() {
	applyTableTheme(TableColors{})
}
