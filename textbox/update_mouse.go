package textbox

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		off := m.offsetAtColumn(msg.X)
		now := m.cfg.Now()

		if !msg.Shift && off == m.lastClickOffset && !m.lastClickAt.IsZero() &&
			now.Sub(m.lastClickAt) <= m.cfg.DoubleClickInterval {
			m.eng.SelectWordAt(off)
			m.mouseDragging = false
			m.lastClickAt = now
			return m, nil
		}

		if msg.Shift {
			m.eng.MoveCaretSelecting(off)
		} else {
			m.eng.SetCaretOffset(off)
		}
		m.mouseDragging = true
		m.lastClickAt = now
		m.lastClickOffset = off

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		m.eng.MoveCaretSelecting(m.offsetAtColumn(m.clampMouseX(msg.X)))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, nil
}

func (m Model) mouseInBounds(x, y int) bool {
	if y != 0 || x < 0 {
		return false
	}
	return m.cfg.Width <= 0 || x < m.cfg.Width
}

func (m Model) clampMouseX(x int) int {
	if x < 0 {
		return 0
	}
	if m.cfg.Width > 0 && x >= m.cfg.Width {
		return m.cfg.Width - 1
	}
	return x
}
