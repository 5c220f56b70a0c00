package buffer

import "github.com/iw2rmb/textengine/internal/grapheme"

// Graphemes is a TextBuffer whose characters are user-perceived grapheme
// clusters, so "é" or a ZWJ emoji sequence is a single offset.
type Graphemes struct {
	clusters []string
	version  uint64
}

func NewGraphemes(text string) *Graphemes {
	return &Graphemes{clusters: grapheme.Split(text)}
}

func (b *Graphemes) Text() string { return grapheme.Join(b.clusters) }

func (b *Graphemes) String() string { return b.Text() }

// Version increases on every mutation that changed the text.
func (b *Graphemes) Version() uint64 { return b.version }

func (b *Graphemes) TextLength() int { return len(b.clusters) }

func (b *Graphemes) TextInRange(r TextRange) string {
	r = r.Clamp(len(b.clusters))
	return grapheme.Join(b.clusters[r.Start:r.End()])
}

// CharacterAtOffset returns the first rune of the cluster at offset.
func (b *Graphemes) CharacterAtOffset(offset int) rune {
	if offset < 0 || offset >= len(b.clusters) {
		return 0
	}
	return grapheme.FirstRune(b.clusters[offset])
}

func (b *Graphemes) Insert(index int, text string) {
	b.Replace(index, 0, text)
}

func (b *Graphemes) Delete(index, length int) {
	b.Replace(index, length, "")
}

func (b *Graphemes) Append(text string) {
	b.Replace(len(b.clusters), 0, text)
}

// Replace swaps the clusters in [index, index+length) for text.
//
// The clusters on either side of the edit are re-segmented together with the
// inserted text, so a combining mark typed after a letter joins that letter's
// cluster instead of standing alone.
func (b *Graphemes) Replace(index, length int, text string) {
	r := TextRange{Start: index, Length: length}.Clamp(len(b.clusters))
	if r.IsEmpty() && text == "" {
		return
	}

	lo := r.Start
	if lo > 0 {
		lo--
	}
	hi := r.End()
	if hi < len(b.clusters) {
		hi++
	}

	joined := grapheme.Join(b.clusters[lo:r.Start]) + text + grapheme.Join(b.clusters[r.End():hi])
	mid := grapheme.Split(joined)

	out := make([]string, 0, lo+len(mid)+len(b.clusters)-hi)
	out = append(out, b.clusters[:lo]...)
	out = append(out, mid...)
	out = append(out, b.clusters[hi:]...)
	b.clusters = out
	b.version++
}
