package textbox

// Clipboard is the host's clipboard. Errors are ignored so a broken
// clipboard never takes the UI down.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.eng.SelectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.eng.Caret().IsCursor() {
		return
	}
	m.copySelection()
	m.eng.BackspaceText()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.insert(foldNewlines(s))
}
