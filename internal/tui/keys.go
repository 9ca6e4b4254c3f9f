package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/tolbek/spindle/internal/config"
)

// keyMap adapts the key names from the config file into bubbles
// bindings. The arrow keys stay bound alongside the configured ones.
type keyMap struct {
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	PrevWheel  key.Binding
	NextWheel  key.Binding
	Confirm    key.Binding
	ShowHelp   key.Binding
	Quit       key.Binding
}

func newKeyMap(cfg config.KeyMappings) keyMap {
	return keyMap{
		ScrollUp:   key.NewBinding(key.WithKeys(cfg.ScrollUp, "up"), key.WithHelp(cfg.ScrollUp, "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys(cfg.ScrollDown, "down"), key.WithHelp(cfg.ScrollDown, "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys(cfg.PageUp), key.WithHelp(cfg.PageUp, "page up")),
		PageDown:   key.NewBinding(key.WithKeys(cfg.PageDown), key.WithHelp(cfg.PageDown, "page down")),
		PrevWheel:  key.NewBinding(key.WithKeys(cfg.PrevWheel, "left"), key.WithHelp(cfg.PrevWheel, "previous wheel")),
		NextWheel:  key.NewBinding(key.WithKeys(cfg.NextWheel, "right", "tab"), key.WithHelp(cfg.NextWheel, "next wheel")),
		Confirm:    key.NewBinding(key.WithKeys(cfg.Confirm), key.WithHelp(cfg.Confirm, "confirm")),
		ShowHelp:   key.NewBinding(key.WithKeys(cfg.ShowHelp), key.WithHelp(cfg.ShowHelp, "help")),
		Quit:       key.NewBinding(key.WithKeys(cfg.Quit, "ctrl+c", "esc"), key.WithHelp(cfg.Quit, "cancel")),
	}
}
