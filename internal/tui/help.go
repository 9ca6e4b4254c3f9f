package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/tolbek/spindle/internal/config"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// renderHelp renders the key-binding help screen as markdown.
func renderHelp(keys config.KeyMappings, width int) string {
	md := fmt.Sprintf(`# spindle

Scroll a wheel and let it settle; the combined value updates when a
column snaps into place.

| Key | Action |
|-----|--------|
| %s / %s | scroll the focused wheel |
| %s / %s | scroll a page |
| %s / %s | focus the previous / next wheel |
| %s | confirm and print the value |
| %s | toggle this help |
| %s | cancel |

Mouse wheel scrolls the column under the cursor; clicking a row snaps
straight to it.
`,
		keys.ScrollUp, keys.ScrollDown,
		keys.PageUp, keys.PageDown,
		keys.PrevWheel, keys.NextWheel,
		keys.Confirm,
		keys.ShowHelp,
		keys.Quit,
	)

	renderer, err := getRenderer(width)
	if err == nil {
		if rendered, err := renderer.Render(md); err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return md
}
