package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tolbek/spindle/internal/wheel"
)

// contentHeight is the rendered overlay height: column blocks (title +
// bordered rows) plus the footer lines.
const contentHeight = wheelRows + 3 + 3

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == helpMode {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			renderHelp(m.cfg.KeyMappings, m.width*2/3),
		)
	}

	columns := make([]string, 0, len(m.wheels()))
	for i := range m.wheels() {
		columns = append(columns, m.renderColumn(i, i == m.focus))
	}
	row := lipgloss.JoinHorizontal(
		lipgloss.Top,
		interleave(columns, strings.Repeat(" ", columnGap))...,
	)

	footer := "\n" +
		valueStyle().Render(m.sess.formatted) + "\n" +
		footerStyle().Render(m.hints())

	content := lipgloss.JoinVertical(lipgloss.Center, row, footer)
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

// renderColumn renders one wheel column: a title and the seven-row
// selection window with the center row highlighted.
func (m Model) renderColumn(i int, focused bool) string {
	w := m.wheels()[i]

	var rows []string
	center := wheelRows / 2
	for off := -center; off <= center; off++ {
		caption := ""
		active, disabled := false, false
		if r, ok := w.At(w.VirtualIndex() + off); ok && !r.Filler {
			caption = r.Caption
			active = r.Active
			disabled = r.Disabled
		}
		rows = append(rows, rowStyle(off, active, disabled).Render(caption))
	}

	title := titleStyle().Render(wheel.Captionize(w.Role().String()))
	box := columnStyle(focused).Render(strings.Join(rows, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, title, box)
}

func (m Model) hints() string {
	keys := m.cfg.KeyMappings
	parts := []string{
		keys.ScrollUp + "/" + keys.ScrollDown + " scroll",
	}
	if len(m.viewports) > 1 {
		parts = append(parts, keys.PrevWheel+"/"+keys.NextWheel+" wheel")
	}
	parts = append(parts,
		keys.Confirm+" confirm",
		keys.ShowHelp+" help",
		keys.Quit+" cancel",
	)
	return strings.Join(parts, "  ")
}

// hitTest maps terminal coordinates to a column index and a visible
// row (0-based within the selection window). The layout mirrors View:
// blocks centered horizontally, content centered vertically.
func (m Model) hitTest(x, y int) (col, row int, ok bool) {
	n := len(m.viewports)
	if n == 0 || m.width == 0 {
		return 0, 0, false
	}
	blockW := columnWidth + 2 // borders
	totalW := n*blockW + (n-1)*columnGap
	startX := (m.width - totalW) / 2
	startY := (m.height - contentHeight) / 2

	// Skip the title line and the top border.
	row = y - startY - 2
	if row < 0 || row >= wheelRows {
		return 0, 0, false
	}

	dx := x - startX
	if dx < 0 {
		return 0, 0, false
	}
	stride := blockW + columnGap
	col = dx / stride
	if col >= n || dx%stride >= blockW {
		return 0, 0, false
	}
	return col, row, true
}

// interleave joins items with sep between each pair, for horizontal
// composition.
func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}
