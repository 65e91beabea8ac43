package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/olivier-w/climp-spectrum/internal/source"
	"github.com/olivier-w/climp-spectrum/internal/spectrum"
	"github.com/olivier-w/climp-spectrum/internal/visualizer"
)

const (
	noticeTTL = 3 * time.Second

	fallbackWidth  = 80
	fallbackHeight = 24
)

// Model is the Bubbletea model that drives the spectrum display. Each tick
// pulls one capture state from the source; View renders it afresh.
type Model struct {
	source   source.Source
	opts     visualizer.Options
	state    spectrum.CaptureState
	width    int
	height   int
	keys     keyMap
	help     help.Model
	quitting bool
	log      *slog.Logger

	notice     string    // transient status message
	noticeTime time.Time // when notice was set
}

// New creates a Model reading from src and rendering with opts.
func New(src source.Source, opts visualizer.Options, log *slog.Logger) Model {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return Model{
		source: src,
		opts:   opts,
		keys:   defaultKeys(),
		help:   help.New(),
		log:    log,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.opts.TickRate), tea.SetWindowTitle("climp-spectrum"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		prev := m.state.Mode()
		m.state = m.source.Capture()
		if mode := m.state.Mode(); mode != prev {
			m.log.Info("capture mode changed", "from", prev, "to", mode)
		}
		if m.notice != "" && time.Since(m.noticeTime) > noticeTTL {
			m.notice = ""
		}
		return m, tickCmd(m.opts.TickRate)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Pause):
		p, ok := m.source.(source.Pauser)
		if !ok {
			m.setNotice("source cannot pause")
			return m, nil
		}
		if p.TogglePause() {
			m.setNotice("paused")
		} else {
			m.setNotice("resumed")
		}
		m.state = m.source.Capture()

	case key.Matches(msg, m.keys.Signal):
		d, ok := m.source.(source.Disconnector)
		if !ok {
			m.setNotice("source has no signal to toggle")
			return m, nil
		}
		if d.ToggleSignal() {
			m.setNotice("signal dropped")
		} else {
			m.setNotice("signal restored")
		}
		m.state = m.source.Capture()
	}
	return m, nil
}

func (m *Model) setNotice(s string) {
	m.notice = s
	m.noticeTime = time.Now()
	m.log.Debug("notice", "text", s)
}

// region is the area left for the visualizer under the help row.
func (m Model) region() visualizer.Region {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = fallbackWidth, fallbackHeight
	}
	return visualizer.Region{Width: w, Height: max(h-1, 0)}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	region := m.region()
	frame := visualizer.Render(region, m.state, m.opts)

	footer := helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	if m.notice != "" {
		footer += "  " + noticeStyle.Render(m.notice)
	}
	return frame.View + "\n" + ansi.Truncate(footer, region.Width, "")
}
