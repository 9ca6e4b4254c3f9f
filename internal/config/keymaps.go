package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Wheel scrolling
	ScrollUp   string `yaml:"scroll_up"`
	ScrollDown string `yaml:"scroll_down"`
	PageUp     string `yaml:"page_up"`
	PageDown   string `yaml:"page_down"`

	// Column focus
	PrevWheel string `yaml:"prev_wheel"`
	NextWheel string `yaml:"next_wheel"`

	// Other
	Confirm  string `yaml:"confirm"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		ScrollUp:   "k",
		ScrollDown: "j",
		PageUp:     "u",
		PageDown:   "d",
		PrevWheel:  "h",
		NextWheel:  "l",
		Confirm:    "enter",
		ShowHelp:   "?",
		Quit:       "q",
	}
}

// applyDefaults fills in any unset key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&k.ScrollUp, defaults.ScrollUp)
	fill(&k.ScrollDown, defaults.ScrollDown)
	fill(&k.PageUp, defaults.PageUp)
	fill(&k.PageDown, defaults.PageDown)
	fill(&k.PrevWheel, defaults.PrevWheel)
	fill(&k.NextWheel, defaults.NextWheel)
	fill(&k.Confirm, defaults.Confirm)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
