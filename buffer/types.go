package buffer

import "fmt"

// TextRange is a contiguous span of character offsets: [Start, Start+Length).
type TextRange struct {
	Start  int
	Length int
}

// FromOffsets builds the range between two offsets given in any order.
func FromOffsets(a, b int) TextRange {
	if a <= b {
		return TextRange{Start: a, Length: b - a}
	}
	return TextRange{Start: b, Length: a - b}
}

func (r TextRange) End() int { return r.Start + r.Length }

func (r TextRange) IsEmpty() bool { return r.Length == 0 }

// Contains reports whether offset lies within [Start, End].
// Both edges count so a caret at End is inside the range it just typed.
func (r TextRange) Contains(offset int) bool {
	return offset >= r.Start && offset <= r.End()
}

// Clamp clamps both edges into [0, textLength] and normalizes the result.
//
// The returned range always satisfies 0 <= Start <= End <= textLength.
func (r TextRange) Clamp(textLength int) TextRange {
	if textLength < 0 {
		textLength = 0
	}
	start := clampInt(r.Start, 0, textLength)
	end := clampInt(r.End(), 0, textLength)
	return FromOffsets(start, end)
}

func (r TextRange) String() string {
	return fmt.Sprintf("TextRange(%d,%d)", r.Start, r.Length)
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
