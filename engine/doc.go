// Package engine implements caret placement, range selection, word
// segmentation and edit coordination over a buffer.TextBuffer.
//
// The engine never renders and never owns its buffer. Every offset passed in
// is clamped to [0, TextLength]; no operation fails on out-of-range input.
//
// An Engine is not safe for concurrent use. Hosts drive it from one goroutine
// and must not mutate the buffer while an engine method runs.
package engine
