package buffer

// TextBuffer is the storage capability an engine mutates but does not own.
//
// Callers guarantee 0 <= index <= TextLength() and that index+length stays in
// bounds. Implementations may assume valid input.
type TextBuffer interface {
	TextLength() int
	TextInRange(r TextRange) string
	CharacterAtOffset(offset int) rune

	Insert(index int, text string)
	Delete(index, length int)
	Append(text string)
	Replace(index, length int, text string)
}

var (
	_ TextBuffer = (*Runes)(nil)
	_ TextBuffer = (*Graphemes)(nil)
)

// Runes is a TextBuffer whose characters are Unicode code points.
type Runes struct {
	text    []rune
	version uint64
}

func NewRunes(text string) *Runes {
	return &Runes{text: []rune(text)}
}

func (b *Runes) Text() string { return string(b.text) }

func (b *Runes) String() string { return b.Text() }

// Version increases on every mutation that changed the text.
func (b *Runes) Version() uint64 { return b.version }

func (b *Runes) TextLength() int { return len(b.text) }

func (b *Runes) TextInRange(r TextRange) string {
	r = r.Clamp(len(b.text))
	return string(b.text[r.Start:r.End()])
}

func (b *Runes) CharacterAtOffset(offset int) rune {
	if offset < 0 || offset >= len(b.text) {
		return 0
	}
	return b.text[offset]
}

func (b *Runes) Insert(index int, text string) {
	b.Replace(index, 0, text)
}

func (b *Runes) Delete(index, length int) {
	b.Replace(index, length, "")
}

func (b *Runes) Append(text string) {
	b.Replace(len(b.text), 0, text)
}

func (b *Runes) Replace(index, length int, text string) {
	r := TextRange{Start: index, Length: length}.Clamp(len(b.text))
	ins := []rune(text)
	if r.IsEmpty() && len(ins) == 0 {
		return
	}

	out := make([]rune, 0, len(b.text)-r.Length+len(ins))
	out = append(out, b.text[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.text[r.End():]...)
	b.text = out
	b.version++
}
