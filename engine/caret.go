package engine

import (
	"fmt"

	"github.com/iw2rmb/textengine/buffer"
)

// CaretPosition tags which edge of a caret's range is active.
type CaretPosition uint8

const (
	CaretStart CaretPosition = iota
	CaretEnd
)

func (p CaretPosition) String() string {
	switch p {
	case CaretStart:
		return "Start"
	case CaretEnd:
		return "End"
	default:
		return fmt.Sprintf("CaretPosition(%d)", uint8(p))
	}
}

// Caret is the cursor/selection state: a range plus its active edge.
//
// A zero-length range is a plain cursor. Carets compare with ==.
type Caret struct {
	Range    buffer.TextRange
	Position CaretPosition
}

// CursorAt returns a zero-length caret at offset.
func CursorAt(offset int) Caret {
	return Caret{Range: buffer.TextRange{Start: offset}, Position: CaretStart}
}

// Location returns the offset of the active edge.
func (c Caret) Location() int {
	if c.Position == CaretEnd {
		return c.Range.End()
	}
	return c.Range.Start
}

// Anchor returns the offset of the edge that stays fixed while selecting.
func (c Caret) Anchor() int {
	if c.Position == CaretEnd {
		return c.Range.Start
	}
	return c.Range.End()
}

func (c Caret) IsCursor() bool { return c.Range.IsEmpty() }

func (c Caret) String() string {
	return fmt.Sprintf("Caret(%v, %v)", c.Range, c.Position)
}
