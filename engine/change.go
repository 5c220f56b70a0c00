package engine

import "github.com/iw2rmb/textengine/buffer"

// ChangeKind identifies what an effective change touched.
type ChangeKind uint8

const (
	ChangeCaret ChangeKind = iota
	ChangeText
)

func (k ChangeKind) String() string {
	if k == ChangeText {
		return "text"
	}
	return "caret"
}

// EditOp names the buffer call an edit was carried out with.
type EditOp uint8

const (
	EditInsert EditOp = iota
	EditAppend
	EditDelete
	EditReplace
)

func (op EditOp) String() string {
	switch op {
	case EditInsert:
		return "insert"
	case EditAppend:
		return "append"
	case EditDelete:
		return "delete"
	case EditReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Edit describes one buffer mutation.
//
// Range is in offsets before the edit; Inserted is the range the new text
// occupies after it.
type Edit struct {
	Op          EditOp
	Range       buffer.TextRange
	Inserted    buffer.TextRange
	Text        string
	DeletedText string
}

// Change is the payload delivered to Options.OnChange.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64
	CaretBefore   Caret
	CaretAfter    Caret
	Edits         []Edit
}

type changeBuilder struct {
	kind          ChangeKind
	versionBefore uint64
	caretBefore   Caret
	edits         []Edit
}

// LastChange returns the most recent effective change.
func (e *Engine) LastChange() (Change, bool) {
	if !e.hasLastChange {
		return Change{}, false
	}
	return cloneChange(e.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.Edits = append([]Edit(nil), in.Edits...)
	return out
}

func (e *Engine) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:          kind,
		versionBefore: e.version,
		caretBefore:   e.caret,
	}
}

func (cb *changeBuilder) addEdit(edit Edit) {
	cb.edits = append(cb.edits, edit)
}

func (e *Engine) commitChange(cb changeBuilder) {
	if e.version == cb.versionBefore {
		return
	}
	e.lastChange = Change{
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  e.version,
		CaretBefore:   cb.caretBefore,
		CaretAfter:    e.caret,
		Edits:         append([]Edit(nil), cb.edits...),
	}
	e.hasLastChange = true
	if e.opt.OnChange != nil {
		e.opt.OnChange(cloneChange(e.lastChange))
	}
}
