package textbox

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/textengine/internal/grapheme"
)

type spanKind uint8

const (
	spanText spanKind = iota
	spanSelection
	spanCursor
)

func (m Model) View() string {
	st := m.cfg.Style
	var sb strings.Builder
	sb.WriteString(st.Prompt.Render(m.cfg.Prompt))

	gs := m.glyphs()
	if len(gs) == 0 && m.cfg.Placeholder != "" {
		sb.WriteString(m.renderPlaceholder())
		return sb.String()
	}

	caret := m.eng.Caret()
	loc := caret.Location()
	width := m.contentWidth()

	var (
		run     strings.Builder
		runKind spanKind
		used    int
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.styleFor(runKind).Render(run.String()))
		run.Reset()
	}

	for i := m.xOffset; i < len(gs); i++ {
		g := gs[i]
		if width >= 0 && used+g.cells > width {
			break
		}
		kind := spanText
		switch {
		case m.focused && caret.IsCursor() && i == loc:
			kind = spanCursor
		case !caret.IsCursor() && i >= caret.Range.Start && i < caret.Range.End():
			kind = spanSelection
		}
		if kind != runKind {
			flush()
			runKind = kind
		}
		run.WriteString(g.text)
		used += g.cells
	}
	flush()

	if m.focused && caret.IsCursor() && loc == len(gs) && (width < 0 || used < width) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) styleFor(kind spanKind) lipgloss.Style {
	switch kind {
	case spanCursor:
		return m.cfg.Style.Cursor
	case spanSelection:
		return m.cfg.Style.Selection
	default:
		return m.cfg.Style.Text
	}
}

// renderPlaceholder draws the cursor over the first placeholder cluster when
// focused, like an empty caret sitting at offset zero.
func (m Model) renderPlaceholder() string {
	st := m.cfg.Style
	clusters := grapheme.Split(m.cfg.Placeholder)
	width := m.contentWidth()
	if width >= 0 {
		used := 0
		for i, c := range clusters {
			used += grapheme.Width(c, m.cfg.TabWidth)
			if used > width {
				clusters = clusters[:i]
				break
			}
		}
	}
	if len(clusters) == 0 {
		return ""
	}
	if !m.focused {
		return st.Placeholder.Render(grapheme.Join(clusters))
	}
	return st.Cursor.Render(clusters[0]) + st.Placeholder.Render(grapheme.Join(clusters[1:]))
}
