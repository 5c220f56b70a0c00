package textbox

import "time"

// Units selects what one character of the internal buffer is.
type Units uint8

const (
	UnitGraphemes Units = iota
	UnitRunes
)

// Config configures the text box Model.
type Config struct {
	// Initial text for the internal buffer. Ignored by NewWithBuffer.
	Text string
	// Units of the internal buffer. Ignored by NewWithBuffer.
	Units Units

	Prompt      string
	Placeholder string

	// Width is the total cell width including the prompt. Zero means
	// unbounded: the whole text is rendered and nothing scrolls.
	Width int
	// CharLimit caps the text length in buffer units. Zero means no limit.
	CharLimit int
	// TabWidth is the cell width of a tab (default 4, matching lipgloss).
	TabWidth int

	ReadOnly bool

	KeyMap    KeyMap
	Style     Style
	Clipboard Clipboard

	// OnChange is called for every effective caret or text change.
	OnChange func(ChangeEvent)
	// OnSubmit is called with the current value when Submit is pressed.
	OnSubmit func(value string)

	// Now and DoubleClickInterval drive double-click detection.
	Now                 func() time.Time
	DoubleClickInterval time.Duration
}

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.CharLimit < 0 {
		cfg.CharLimit = 0
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.DoubleClickInterval <= 0 {
		cfg.DoubleClickInterval = 400 * time.Millisecond
	}
	return cfg
}
