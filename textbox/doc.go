// Package textbox provides a single-line Bubble Tea text box driven by an
// engine.Engine.
//
// The box translates key and mouse messages into engine operations and
// renders the caret and selection with lipgloss. It keeps no text state of
// its own: the buffer and the engine are the source of truth, and hosts may
// mutate either between updates.
package textbox
