package engine

import (
	"testing"

	"github.com/iw2rmb/textengine/buffer"
)

func TestWordSegmentIn(t *testing.T) {
	cases := []struct {
		text   string
		offset int
		want   buffer.TextRange
	}{
		{text: "", offset: 0, want: rng(0, 0)},
		{text: "", offset: 5, want: rng(0, 0)},
		{text: "Abc def ghi", offset: 5, want: rng(4, 3)},
		{text: "Abc def ghi", offset: 4, want: rng(4, 3)},
		{text: "Abc def ghi", offset: 7, want: rng(4, 3)},
		{text: "Abc def ghi", offset: 0, want: rng(0, 3)},
		{text: "Abc def ghi", offset: 3, want: rng(0, 3)},
		{text: "Abc def ghi", offset: 11, want: rng(8, 3)},
		{text: "Abc def ghi", offset: 99, want: rng(8, 3)},
		{text: "Abc def ghi", offset: -4, want: rng(0, 3)},
		{text: "Abc   Def", offset: 4, want: rng(3, 3)},
		{text: "Abc   Def", offset: 6, want: rng(6, 3)},
		{text: "abcdef", offset: 2, want: rng(0, 6)},
		{text: "    ", offset: 2, want: rng(0, 4)},
		{text: "    ", offset: 4, want: rng(0, 4)},
		{text: "foo.bar", offset: 3, want: rng(3, 1)},
		{text: "foo.bar", offset: 4, want: rng(4, 3)},
		{text: "snake_case x", offset: 6, want: rng(0, 10)},
		{text: "x1 42", offset: 4, want: rng(3, 2)},
	}
	for _, tc := range cases {
		e, _ := newTestEngine(t, tc.text)
		if got := e.WordSegmentIn(tc.offset); got != tc.want {
			t.Fatalf("WordSegmentIn(%q, %d): got %v, want %v", tc.text, tc.offset, got, tc.want)
		}
	}
}

func TestWordSegmentIn_SameRunSameRange(t *testing.T) {
	const text = "one  two\tthree,four"
	e, _ := newTestEngine(t, text)

	for off := 0; off <= len(text); off++ {
		seg := e.WordSegmentIn(off)
		if !seg.Contains(off) {
			t.Fatalf("WordSegmentIn(%d)=%v does not contain offset", off, seg)
		}
		for inner := seg.Start + 1; inner < seg.End(); inner++ {
			if got := e.WordSegmentIn(inner); got != seg {
				t.Fatalf("WordSegmentIn(%d)=%v, want %v (same run as %d)", inner, got, seg, off)
			}
		}
	}
}

func TestWordSegmentIn_DoesNotMoveCaret(t *testing.T) {
	e, _ := newTestEngine(t, "Abc def")
	e.SetCaretOffset(1)
	_ = e.WordSegmentIn(5)
	if got, want := e.Caret(), CursorAt(1); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
}

func TestMoveRightWord(t *testing.T) {
	cases := []struct {
		text string
		from int
		want int
	}{
		{text: "Abc   Def", from: 3, want: 6},
		{text: "Abc   Def", from: 0, want: 6},
		{text: "Abc   Def", from: 4, want: 6},
		{text: "Abc   Def", from: 6, want: 9},
		{text: "Abc   Def", from: 9, want: 9},
		{text: "foo.bar", from: 0, want: 3},
		{text: "foo.bar", from: 3, want: 4},
		{text: "", from: 0, want: 0},
	}
	for _, tc := range cases {
		e, _ := newTestEngine(t, tc.text)
		e.SetCaretOffset(tc.from)
		e.MoveRightWord()
		if got, want := e.Caret(), CursorAt(tc.want); got != want {
			t.Fatalf("MoveRightWord(%q from %d): got %v, want %v", tc.text, tc.from, got, want)
		}
	}
}

func TestMoveLeftWord(t *testing.T) {
	cases := []struct {
		text string
		from int
		want int
	}{
		{text: "Abc   Def", from: 9, want: 6},
		{text: "Abc   Def", from: 7, want: 6},
		{text: "Abc   Def", from: 6, want: 0},
		{text: "Abc   Def", from: 4, want: 0},
		{text: "Abc   Def", from: 0, want: 0},
		{text: "foo.bar", from: 4, want: 3},
		{text: "  lead", from: 2, want: 0},
	}
	for _, tc := range cases {
		e, _ := newTestEngine(t, tc.text)
		e.SetCaretOffset(tc.from)
		e.MoveLeftWord()
		if got, want := e.Caret(), CursorAt(tc.want); got != want {
			t.Fatalf("MoveLeftWord(%q from %d): got %v, want %v", tc.text, tc.from, got, want)
		}
	}
}

func TestMoveWord_CollapsesSelectionFromActiveEdge(t *testing.T) {
	e, _ := newTestEngine(t, "Abc def ghi")
	e.SetCaret(Caret{Range: rng(1, 4), Position: CaretEnd})
	e.MoveRightWord()
	if got, want := e.Caret(), CursorAt(8); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
}

func TestSelectWord(t *testing.T) {
	e, _ := newTestEngine(t, "Abc def ghi")

	e.SelectRightWord()
	if got, want := e.Caret(), (Caret{Range: rng(0, 4), Position: CaretEnd}); got != want {
		t.Fatalf("first select right word: got %v, want %v", got, want)
	}

	e.SelectRightWord()
	if got, want := e.Caret(), (Caret{Range: rng(0, 8), Position: CaretEnd}); got != want {
		t.Fatalf("second select right word: got %v, want %v", got, want)
	}

	e.SelectLeftWord()
	if got, want := e.Caret(), (Caret{Range: rng(0, 4), Position: CaretEnd}); got != want {
		t.Fatalf("select left word: got %v, want %v", got, want)
	}

	e.SetCaretOffset(11)
	e.SelectLeftWord()
	e.SelectLeftWord()
	if got, want := e.Caret(), (Caret{Range: rng(4, 7), Position: CaretStart}); got != want {
		t.Fatalf("select left twice from end: got %v, want %v", got, want)
	}
}

func TestSelectWordAt(t *testing.T) {
	e, _ := newTestEngine(t, "Abc def ghi")
	e.SelectWordAt(5)
	if got, want := e.Caret(), (Caret{Range: rng(4, 3), Position: CaretStart}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
	if got := e.SelectedText(); got != "def" {
		t.Fatalf("selected: got %q, want %q", got, "def")
	}
}
