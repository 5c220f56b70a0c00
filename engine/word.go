package engine

import (
	"unicode"

	"github.com/iw2rmb/textengine/buffer"
)

type charClass uint8

const (
	classOther charClass = iota // punctuation, symbols
	classWord
	classSpace
)

func classOf(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r), r == '_':
		return classWord
	default:
		return classOther
	}
}

func (e *Engine) classAt(offset int) charClass {
	return classOf(e.buf.CharacterAtOffset(offset))
}

// WordSegmentIn returns the maximal single-class run containing offset.
//
// At offset == TextLength the character before offset decides the class.
// Where whitespace starts right after a word, the word wins.
func (e *Engine) WordSegmentIn(offset int) buffer.TextRange {
	n := e.buf.TextLength()
	if n == 0 {
		return buffer.TextRange{}
	}
	offset = e.clampOffset(offset)

	pivot := offset
	switch {
	case offset == n:
		pivot = n - 1
	case offset > 0 && e.classAt(offset) == classSpace && e.classAt(offset-1) != classSpace:
		pivot = offset - 1
	}

	cls := e.classAt(pivot)
	start := pivot
	for start > 0 && e.classAt(start-1) == cls {
		start--
	}
	end := pivot + 1
	for end < n && e.classAt(end) == cls {
		end++
	}
	return buffer.TextRange{Start: start, Length: end - start}
}

// nextWordBoundary skips the run under offset, unless it is whitespace, and
// then any whitespace after it.
func (e *Engine) nextWordBoundary(offset int) int {
	n := e.buf.TextLength()
	i := e.clampOffset(offset)
	if i < n {
		if cls := e.classAt(i); cls != classSpace {
			for i < n && e.classAt(i) == cls {
				i++
			}
		}
	}
	for i < n && e.classAt(i) == classSpace {
		i++
	}
	return i
}

// prevWordBoundary skips whitespace to the left and then the run before it.
func (e *Engine) prevWordBoundary(offset int) int {
	i := e.clampOffset(offset)
	for i > 0 && e.classAt(i-1) == classSpace {
		i--
	}
	if i > 0 {
		cls := e.classAt(i - 1)
		for i > 0 && e.classAt(i-1) == cls {
			i--
		}
	}
	return i
}
