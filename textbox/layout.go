package textbox

import (
	"github.com/iw2rmb/textengine/buffer"
	"github.com/iw2rmb/textengine/internal/grapheme"
)

type glyph struct {
	text  string
	cells int
}

// glyphs returns one entry per buffer character. It goes through
// TextInRange per offset so it stays correct for any buffer unit.
func (m Model) glyphs() []glyph {
	n := m.buf.TextLength()
	out := make([]glyph, 0, n)
	for i := 0; i < n; i++ {
		s := m.buf.TextInRange(buffer.TextRange{Start: i, Length: 1})
		out = append(out, glyph{text: s, cells: grapheme.Width(s, m.cfg.TabWidth)})
	}
	return out
}

func (m Model) promptWidth() int {
	w := 0
	for _, g := range grapheme.Split(m.cfg.Prompt) {
		w += grapheme.Width(g, m.cfg.TabWidth)
	}
	return w
}

// contentWidth is the number of cells available for text, or -1 if unbounded.
func (m Model) contentWidth() int {
	if m.cfg.Width <= 0 {
		return -1
	}
	w := m.cfg.Width - m.promptWidth()
	if w < 1 {
		w = 1
	}
	return w
}

// scrollToCaret adjusts xOffset so the caret's active edge is visible.
func (m *Model) scrollToCaret() {
	width := m.contentWidth()
	gs := m.glyphs()
	if m.xOffset > len(gs) {
		m.xOffset = len(gs)
	}
	if width < 0 {
		m.xOffset = 0
		return
	}

	loc := m.eng.Caret().Location()
	if loc > len(gs) {
		loc = len(gs)
	}
	if loc < m.xOffset {
		m.xOffset = loc
		return
	}

	caretCells := 1
	if loc < len(gs) && gs[loc].cells > 0 {
		caretCells = gs[loc].cells
	}
	for m.xOffset < loc && cellsBetween(gs, m.xOffset, loc)+caretCells > width {
		m.xOffset++
	}
}

func cellsBetween(gs []glyph, from, to int) int {
	w := 0
	for i := from; i < to && i < len(gs); i++ {
		w += gs[i].cells
	}
	return w
}

// offsetAtColumn maps a column relative to the box's left edge to a buffer
// offset. Clicking a character cell places the caret before it; clicking
// past the text places it at the end.
func (m Model) offsetAtColumn(x int) int {
	col := x - m.promptWidth()
	if col < 0 {
		return m.xOffset
	}
	gs := m.glyphs()
	acc := 0
	for i := m.xOffset; i < len(gs); i++ {
		if col < acc+gs[i].cells {
			return i
		}
		acc += gs[i].cells
	}
	return len(gs)
}
