package engine

import (
	"testing"

	"github.com/iw2rmb/textengine/buffer"
)

type bufferCall struct {
	Op     string
	Index  int
	Length int
	Text   string
}

// recordingBuffer logs every mutating call before forwarding it.
type recordingBuffer struct {
	*buffer.Runes
	calls []bufferCall
}

func (b *recordingBuffer) Insert(index int, text string) {
	b.calls = append(b.calls, bufferCall{Op: "Insert", Index: index, Text: text})
	b.Runes.Insert(index, text)
}

func (b *recordingBuffer) Delete(index, length int) {
	b.calls = append(b.calls, bufferCall{Op: "Delete", Index: index, Length: length})
	b.Runes.Delete(index, length)
}

func (b *recordingBuffer) Append(text string) {
	b.calls = append(b.calls, bufferCall{Op: "Append", Text: text})
	b.Runes.Append(text)
}

func (b *recordingBuffer) Replace(index, length int, text string) {
	b.calls = append(b.calls, bufferCall{Op: "Replace", Index: index, Length: length, Text: text})
	b.Runes.Replace(index, length, text)
}

func newTestEngine(t *testing.T, text string) (*Engine, *recordingBuffer) {
	t.Helper()
	buf := &recordingBuffer{Runes: buffer.NewRunes(text)}
	e, err := New(buf, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, buf
}

func rng(start, length int) buffer.TextRange {
	return buffer.TextRange{Start: start, Length: length}
}
