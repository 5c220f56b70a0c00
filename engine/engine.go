package engine

import (
	"errors"

	"github.com/iw2rmb/textengine/buffer"
)

// ErrNilBuffer is returned by New when no buffer is supplied.
var ErrNilBuffer = errors.New("engine: nil text buffer")

type Options struct {
	// OnChange is called synchronously after every effective caret or text
	// change. No-op operations do not call it.
	OnChange func(Change)
}

// Engine owns caret state over a shared, non-owned TextBuffer.
type Engine struct {
	buf     buffer.TextBuffer
	caret   Caret
	version uint64

	opt Options

	lastChange    Change
	hasLastChange bool
}

func New(buf buffer.TextBuffer, opt Options) (*Engine, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	return &Engine{
		buf:   buf,
		caret: CursorAt(0),
		opt:   opt,
	}, nil
}

// Buffer returns the bound buffer for callers needing raw text access.
func (e *Engine) Buffer() buffer.TextBuffer { return e.buf }

// Caret returns the current caret.
func (e *Engine) Caret() Caret { return e.caret }

// Version increases once per effective caret or text change.
func (e *Engine) Version() uint64 { return e.version }

// SetCaret replaces the caret after clamping its range to the buffer.
func (e *Engine) SetCaret(c Caret) {
	cb := e.beginChange(ChangeCaret)
	e.setCaret(c)
	e.commitChange(cb)
}

// SetCaretRange selects r with the active edge at its start.
func (e *Engine) SetCaretRange(r buffer.TextRange) {
	e.SetCaret(Caret{Range: r, Position: CaretStart})
}

// SetCaretOffset places a zero-length cursor at offset.
func (e *Engine) SetCaretOffset(offset int) {
	e.SetCaret(CursorAt(offset))
}

// SelectAll selects the whole text with the active edge at the end.
func (e *Engine) SelectAll() {
	e.SetCaret(Caret{
		Range:    buffer.TextRange{Start: 0, Length: e.buf.TextLength()},
		Position: CaretEnd,
	})
}

// SelectWordAt selects the word segment containing offset.
func (e *Engine) SelectWordAt(offset int) {
	e.SetCaretRange(e.WordSegmentIn(offset))
}

// SelectedText returns the text under a non-empty selection, or "".
func (e *Engine) SelectedText() string {
	c := e.current()
	if c.Range.IsEmpty() {
		return ""
	}
	return e.buf.TextInRange(c.Range)
}

// current returns the caret clamped against the buffer as it is now, which
// may have shrunk since the caret was last set.
func (e *Engine) current() Caret {
	c := e.caret
	c.Range = c.Range.Clamp(e.buf.TextLength())
	return c
}

func (e *Engine) clamp(c Caret) Caret {
	c.Range = c.Range.Clamp(e.buf.TextLength())
	return c
}

func (e *Engine) clampOffset(offset int) int {
	n := e.buf.TextLength()
	if offset < 0 {
		return 0
	}
	if offset > n {
		return n
	}
	return offset
}

func (e *Engine) setCaret(c Caret) {
	next := e.clamp(c)
	if next == e.caret {
		return
	}
	e.caret = next
	e.version++
}
