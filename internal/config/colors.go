package config

// ColorScheme defines all configurable color values for the picker
// overlay. Empty fields fall back to the preset's values.
type ColorScheme struct {
	// Preset name (e.g. "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (active row, focused column border)
	Accent string `yaml:"accent"`

	// Row colors by distance from the selection center
	ActiveFg string `yaml:"active_fg"`
	ActiveBg string `yaml:"active_bg"`
	NearFg   string `yaml:"near_fg"`  // one row out
	FarFg    string `yaml:"far_fg"`   // two or more rows out
	Disabled string `yaml:"disabled"` // unreachable rows (day overflow)

	// UI element colors
	ColumnBorder  string `yaml:"column_border"`
	FocusedBorder string `yaml:"focused_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`
}

// Default returns the default color scheme.
func defaultScheme() ColorScheme {
	return ColorScheme{
		Preset:        "default",
		Accent:        "#874BFD",
		ActiveFg:      "#FFFFFF",
		ActiveBg:      "#3A3A3A",
		NearFg:        "#D0D0D0",
		FarFg:         "#8A8A8A",
		Disabled:      "#585858",
		ColumnBorder:  "#5F87D7",
		FocusedBorder: "#D75FD7",
		Title:         "#D75FD7",
		Subtle:        "#585858",
		Normal:        "#D0D0D0",
	}
}

func monochromeScheme() ColorScheme {
	return ColorScheme{
		Preset:        "monochrome",
		Accent:        "#FFFFFF",
		ActiveFg:      "#FFFFFF",
		ActiveBg:      "#303030",
		NearFg:        "#C0C0C0",
		FarFg:         "#808080",
		Disabled:      "#4E4E4E",
		ColumnBorder:  "#808080",
		FocusedBorder: "#FFFFFF",
		Title:         "#FFFFFF",
		Subtle:        "#4E4E4E",
		Normal:        "#D0D0D0",
	}
}

// GetPreset returns a preset color scheme by name.
func GetPreset(name string) ColorScheme {
	switch name {
	case "monochrome":
		return monochromeScheme()
	default:
		return defaultScheme()
	}
}

// ApplyDefaults fills in missing color values using the preset as the
// base, so a config file only has to override what it cares about.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.ActiveFg, preset.ActiveFg)
	fill(&c.ActiveBg, preset.ActiveBg)
	fill(&c.NearFg, preset.NearFg)
	fill(&c.FarFg, preset.FarFg)
	fill(&c.Disabled, preset.Disabled)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.FocusedBorder, preset.FocusedBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
}

// MergeFrom overrides this scheme with every non-empty field of other.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.ActiveFg, other.ActiveFg)
	merge(&c.ActiveBg, other.ActiveBg)
	merge(&c.NearFg, other.NearFg)
	merge(&c.FarFg, other.FarFg)
	merge(&c.Disabled, other.Disabled)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.FocusedBorder, other.FocusedBorder)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
}
