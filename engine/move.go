package engine

import "github.com/iw2rmb/textengine/buffer"

// MoveRight collapses a selection to its end, or steps a cursor one right.
func (e *Engine) MoveRight() {
	c := e.current()
	if !c.Range.IsEmpty() {
		e.SetCaretOffset(c.Range.End())
		return
	}
	e.SetCaretOffset(c.Range.Start + 1)
}

// MoveLeft collapses a selection to its start, or steps a cursor one left.
func (e *Engine) MoveLeft() {
	c := e.current()
	if !c.Range.IsEmpty() {
		e.SetCaretOffset(c.Range.Start)
		return
	}
	e.SetCaretOffset(c.Range.Start - 1)
}

func (e *Engine) MoveToStart() { e.SetCaretOffset(0) }

func (e *Engine) MoveToEnd() { e.SetCaretOffset(e.buf.TextLength()) }

// MoveRightWord moves a cursor to the start of the next word, or to the end.
func (e *Engine) MoveRightWord() {
	e.SetCaretOffset(e.nextWordBoundary(e.current().Location()))
}

// MoveLeftWord moves a cursor to the start of the current or previous word.
func (e *Engine) MoveLeftWord() {
	e.SetCaretOffset(e.prevWordBoundary(e.current().Location()))
}

func (e *Engine) SelectRight() {
	e.MoveCaretSelecting(e.current().Location() + 1)
}

func (e *Engine) SelectLeft() {
	e.MoveCaretSelecting(e.current().Location() - 1)
}

func (e *Engine) SelectToStart() { e.MoveCaretSelecting(0) }

func (e *Engine) SelectToEnd() { e.MoveCaretSelecting(e.buf.TextLength()) }

func (e *Engine) SelectRightWord() {
	e.MoveCaretSelecting(e.nextWordBoundary(e.current().Location()))
}

func (e *Engine) SelectLeftWord() {
	e.MoveCaretSelecting(e.prevWordBoundary(e.current().Location()))
}

// MoveCaretSelecting keeps the anchor fixed and moves the active edge to
// offset. The active edge is End only when offset lies past the anchor;
// reaching the anchor leaves an empty caret tagged Start.
func (e *Engine) MoveCaretSelecting(offset int) {
	c := e.current()
	anchor := c.Anchor()
	offset = e.clampOffset(offset)

	pos := CaretStart
	if offset > anchor {
		pos = CaretEnd
	}
	e.SetCaret(Caret{Range: buffer.FromOffsets(anchor, offset), Position: pos})
}
