package textbox

import (
	"github.com/iw2rmb/textengine/buffer"
	"github.com/iw2rmb/textengine/engine"
)

// ChangeEvent is delivered to Config.OnChange after an effective change.
type ChangeEvent struct {
	Version uint64
	Kind    engine.ChangeKind
	Caret   engine.Caret
	Edits   []engine.Edit

	// Text is the full value after the change; hosts can diff if needed.
	Text string
}

func buildChangeEvent(c engine.Change, buf buffer.TextBuffer) ChangeEvent {
	return ChangeEvent{
		Version: c.VersionAfter,
		Kind:    c.Kind,
		Caret:   c.CaretAfter,
		Edits:   c.Edits,
		Text:    bufferText(buf),
	}
}

func bufferText(buf buffer.TextBuffer) string {
	return buf.TextInRange(buffer.TextRange{Start: 0, Length: buf.TextLength()})
}
