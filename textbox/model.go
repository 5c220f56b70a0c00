package textbox

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textengine/buffer"
	"github.com/iw2rmb/textengine/engine"
)

// Model is a Bubble Tea component that edits one line of text.
type Model struct {
	cfg Config
	buf buffer.TextBuffer
	eng *engine.Engine

	focused bool

	// xOffset is the first character offset shown when the text is wider
	// than the box.
	xOffset int

	mouseDragging   bool
	lastClickAt     time.Time
	lastClickOffset int
}

// New creates a text box over a fresh buffer holding cfg.Text.
func New(cfg Config) Model {
	var buf buffer.TextBuffer
	if cfg.Units == UnitRunes {
		buf = buffer.NewRunes(cfg.Text)
	} else {
		buf = buffer.NewGraphemes(cfg.Text)
	}
	m, err := NewWithBuffer(cfg, buf)
	if err != nil {
		panic(err) // buf is never nil here
	}
	return m
}

// NewWithBuffer creates a text box over a buffer shared with the host.
func NewWithBuffer(cfg Config, buf buffer.TextBuffer) (Model, error) {
	cfg = normalizeConfig(cfg)
	onChange := cfg.OnChange
	eng, err := engine.New(buf, engine.Options{
		OnChange: func(c engine.Change) {
			if onChange != nil {
				onChange(buildChangeEvent(c, buf))
			}
		},
	})
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:     cfg,
		buf:     buf,
		eng:     eng,
		focused: true,
	}
	m.eng.MoveToEnd()
	m.scrollToCaret()
	return m, nil
}

// Engine exposes the engine so hosts can drive it directly.
func (m Model) Engine() *engine.Engine { return m.eng }

// Value returns the current text.
func (m Model) Value() string { return bufferText(m.buf) }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.cfg.Width = width
	m.scrollToCaret()
	return m
}

func (m Model) Width() int { return m.cfg.Width }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.mouseDragging = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	// Always rescroll: the host may have mutated the buffer between updates.
	m.scrollToCaret()
	return m, cmd
}
