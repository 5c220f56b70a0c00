// Package buffer defines the text storage contract consumed by the engine and
// two in-memory implementations of it.
//
// Offsets count characters in the buffer's own unit: runes for Runes,
// grapheme clusters for Graphemes. Ranges are half-open: [Start, End).
package buffer
