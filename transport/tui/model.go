package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const frameInterval = time.Second / 60

type gameManager interface {
	Tick(elapsed time.Duration, event usecase.Event) *entity.Session
	Stats() entity.Stats
}

type frameMsg time.Time

type model struct {
	logger  *slog.Logger
	manager gameManager

	session   *entity.Session
	cursor    int
	lastFrame time.Time
	spinner   spinner.Model
}

func newModel(logger *slog.Logger, manager gameManager) *model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &model{
		logger:  logger.With("component", "tui"),
		manager: manager,
		session: manager.Tick(0, usecase.Event{}),
		cursor:  4,
		spinner: s,
	}
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(nextFrame(), m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)

		var elapsed time.Duration
		if !m.lastFrame.IsZero() {
			elapsed = now.Sub(m.lastFrame)
		}
		m.lastFrame = now

		m.session = m.manager.Tick(elapsed, usecase.Event{})

		return m, nextFrame()

	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.session.Mode.IsPlaying() {
			if cell := CellAt(msg.X, msg.Y); cell >= 0 {
				m.cursor = cell
				m.dispatch(usecase.CellEvent(cell))
			}
		}

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *model) handleKey(key string) tea.Cmd {
	switch key {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "down", "left", "right", "h", "j", "k", "l":
		if m.session.Mode.IsPlaying() {
			m.cursor = moveCursor(m.cursor, key)
		}

		return nil
	case "enter":
		if m.session.Mode.IsPlaying() {
			if m.session.GameOver {
				m.dispatch(usecase.Event{Kind: usecase.EventPlayAgain})
			} else {
				m.dispatch(usecase.CellEvent(m.cursor))
			}
		}

		return nil
	}

	event, ok := keyEvent(m.session.Mode, key)
	if !ok {
		return nil
	}

	if event.Kind == usecase.EventCell {
		m.cursor = event.Cell
	}

	m.dispatch(event)

	return nil
}

// dispatch feeds one input event to the manager. Time only advances on frames.
func (m *model) dispatch(event usecase.Event) {
	m.logger.Debug("input", "event", event.Kind.String(), "cell", event.Cell)

	m.session = m.manager.Tick(0, event)
}
