package engine

import "github.com/iw2rmb/textengine/buffer"

// InsertText types text at the caret, replacing a non-empty selection.
//
// The caret ends as a cursor right after the inserted characters, counted in
// buffer units so grapheme buffers that merge clusters stay consistent.
func (e *Engine) InsertText(text string) {
	c := e.current()
	if text == "" && c.Range.IsEmpty() {
		return
	}

	cb := e.beginChange(ChangeText)
	before := e.buf.TextLength()
	start := c.Range.Start

	edit := Edit{Range: c.Range, Text: text}
	switch {
	case !c.Range.IsEmpty():
		edit.Op = EditReplace
		edit.DeletedText = e.buf.TextInRange(c.Range)
		e.buf.Replace(start, c.Range.Length, text)
	case start == before:
		edit.Op = EditAppend
		e.buf.Append(text)
	default:
		edit.Op = EditInsert
		e.buf.Insert(start, text)
	}

	inserted := e.buf.TextLength() - before + c.Range.Length
	if inserted < 0 {
		inserted = 0
	}
	edit.Inserted = buffer.TextRange{Start: start, Length: inserted}

	e.finishEdit(&cb, edit, CursorAt(start+inserted))
}

// BackspaceText deletes the selection, or the character before the cursor.
func (e *Engine) BackspaceText() {
	c := e.current()
	if !c.Range.IsEmpty() {
		e.deleteRange(c.Range)
		return
	}
	if c.Range.Start == 0 {
		return
	}
	e.deleteRange(buffer.TextRange{Start: c.Range.Start - 1, Length: 1})
}

// DeleteText deletes the selection, or the character after the cursor.
func (e *Engine) DeleteText() {
	c := e.current()
	if !c.Range.IsEmpty() {
		e.deleteRange(c.Range)
		return
	}
	if c.Range.Start >= e.buf.TextLength() {
		return
	}
	e.deleteRange(buffer.TextRange{Start: c.Range.Start, Length: 1})
}

func (e *Engine) deleteRange(r buffer.TextRange) {
	cb := e.beginChange(ChangeText)
	edit := Edit{
		Op:          EditDelete,
		Range:       r,
		Inserted:    buffer.TextRange{Start: r.Start},
		DeletedText: e.buf.TextInRange(r),
	}
	e.buf.Delete(r.Start, r.Length)
	e.finishEdit(&cb, edit, CursorAt(r.Start))
}

// finishEdit counts the text change as one version step, whether or not the
// caret moved with it.
func (e *Engine) finishEdit(cb *changeBuilder, edit Edit, next Caret) {
	e.caret = e.clamp(next)
	e.version++
	cb.addEdit(edit)
	e.commitChange(*cb)
}
