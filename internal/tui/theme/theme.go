package theme

import "github.com/tolbek/spindle/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent        string
	ActiveFg      string
	ActiveBg      string
	NearFg        string
	FarFg         string
	Disabled      string
	ColumnBorder  string
	FocusedBorder string
	Title         string
	Subtle        string
	Normal        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	ActiveFg = colors.ActiveFg
	ActiveBg = colors.ActiveBg
	NearFg = colors.NearFg
	FarFg = colors.FarFg
	Disabled = colors.Disabled
	ColumnBorder = colors.ColumnBorder
	FocusedBorder = colors.FocusedBorder
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
}
