package textbox

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textengine/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Pasted text is always literal and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.insert(foldNewlines(string(msg.Runes)))
		return m, nil
	}

	km := m.cfg.KeyMap
	e := m.eng
	switch {
	case key.Matches(msg, km.Left):
		e.MoveLeft()
	case key.Matches(msg, km.Right):
		e.MoveRight()
	case key.Matches(msg, km.SelectLeft):
		e.SelectLeft()
	case key.Matches(msg, km.SelectRight):
		e.SelectRight()

	case key.Matches(msg, km.WordLeft):
		e.MoveLeftWord()
	case key.Matches(msg, km.WordRight):
		e.MoveRightWord()
	case key.Matches(msg, km.SelectWordLeft):
		e.SelectLeftWord()
	case key.Matches(msg, km.SelectWordRight):
		e.SelectRightWord()

	case key.Matches(msg, km.Home):
		e.MoveToStart()
	case key.Matches(msg, km.End):
		e.MoveToEnd()
	case key.Matches(msg, km.SelectHome):
		e.SelectToStart()
	case key.Matches(msg, km.SelectEnd):
		e.SelectToEnd()
	case key.Matches(msg, km.SelectAll):
		e.SelectAll()

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			e.BackspaceText()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			e.DeleteText()
		}
	case key.Matches(msg, km.DeleteWordLeft):
		if !m.cfg.ReadOnly {
			if e.Caret().IsCursor() {
				e.SelectLeftWord()
			}
			e.BackspaceText()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	case key.Matches(msg, km.Submit):
		if m.cfg.OnSubmit != nil {
			m.cfg.OnSubmit(m.Value())
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insert(string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			m.insert(" ")
		}
	}
	return m, nil
}

// insert types s, truncated so the text stays within CharLimit.
func (m Model) insert(s string) {
	if m.cfg.ReadOnly || s == "" {
		return
	}
	if limit := m.cfg.CharLimit; limit > 0 {
		kept := m.buf.TextLength() - m.eng.Caret().Range.Length
		room := limit - kept
		if room <= 0 {
			return
		}
		s = m.truncate(s, room)
	}
	m.eng.InsertText(s)
}

func (m Model) truncate(s string, n int) string {
	if m.cfg.Units == UnitRunes {
		if utf8.RuneCountInString(s) <= n {
			return s
		}
		return string([]rune(s)[:n])
	}
	clusters := grapheme.Split(s)
	if len(clusters) <= n {
		return s
	}
	return grapheme.Join(clusters[:n])
}

func foldNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
