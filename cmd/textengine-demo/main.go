package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textengine"
	"github.com/iw2rmb/textengine/internal/config"
	"github.com/iw2rmb/textengine/textbox"
)

// localClipboard keeps copied text for the lifetime of the process.
type localClipboard struct{ s string }

func (c *localClipboard) ReadText() (string, error) { return c.s, nil }
func (c *localClipboard) WriteText(s string) error  { c.s = s; return nil }

type submitted struct {
	values []string
}

type model struct {
	box  textbox.Model
	sub  *submitted
	info string
}

func newModel(cfg config.Config, log *slog.Logger) model {
	sub := &submitted{}
	units := textbox.UnitGraphemes
	if cfg.Units == config.UnitsRunes {
		units = textbox.UnitRunes
	}

	box := textbox.New(textbox.Config{
		Text:        cfg.Text,
		Units:       units,
		Prompt:      cfg.Prompt,
		Placeholder: cfg.Placeholder,
		Width:       cfg.Width,
		CharLimit:   cfg.CharLimit,
		Style:       textbox.DefaultStyle(),
		Clipboard:   &localClipboard{},
		OnChange: func(ev textbox.ChangeEvent) {
			log.Debug("change",
				"version", ev.Version,
				"kind", ev.Kind.String(),
				"caret", ev.Caret.String(),
				"edits", len(ev.Edits),
			)
		},
		OnSubmit: func(value string) {
			log.Info("submit", "value", value)
			sub.values = append(sub.values, value)
		},
	})
	return model{
		box:  box,
		sub:  sub,
		info: fmt.Sprintf("textengine %s  ctrl+q quits, enter submits", textengine.VersionTag()),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.box = m.box.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.box, cmd = m.box.Update(msg)
	return m, cmd
}

func (m model) View() string {
	eng := m.box.Engine()
	s := m.box.View() + "\n\n"
	s += fmt.Sprintf("caret: %s  version: %d\n", eng.Caret(), eng.Version())
	if sel := eng.SelectedText(); sel != "" {
		s += fmt.Sprintf("selected: %q\n", sel)
	}
	if n := len(m.sub.values); n > 0 {
		s += fmt.Sprintf("submitted %d: %q\n", n, m.sub.values[n-1])
	}
	return s + m.info + "\n"
}

func newLogger(cfg config.Log) (*slog.Logger, func(), error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}

func run() error {
	configPath := flag.String("config", "textengine.toml", "path to the TOML config file")
	text := flag.String("text", "", "initial text, overrides the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *text != "" {
		cfg.Text = *text
	}

	log, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Info("starting", "version", textengine.Version(), "units", cfg.Units)

	p := tea.NewProgram(newModel(cfg, log), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
