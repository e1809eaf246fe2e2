// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/casedrill/internal/game"
	"github.com/verte-zerg/casedrill/internal/model"
	"github.com/verte-zerg/casedrill/internal/render"
)

// Journal records evaluated rounds.
type Journal interface {
	InsertRound(ctx context.Context, r model.Round) (int64, error)
}

// Model implements the Bubble Tea practice UI. It keeps the last rendered
// frame so keystroke echo only recomputes the input line.
type Model struct {
	session *game.Session
	journal Journal
	now     func() time.Time

	width int
	lines []string

	journalErr error
}

// NewModel constructs a practice TUI model. journal may be nil.
func NewModel(session *game.Session, journal Journal) *Model {
	m := &Model{
		session: session,
		journal: journal,
		now:     time.Now,
	}
	m.redrawFull()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.redrawFull()
		return m, nil
	case tea.KeyMsg:
		eff := m.session.Handle(decodeKey(msg))
		if eff.Round != nil {
			m.record(*eff.Round)
		}
		if eff.Quit {
			return m, tea.Quit
		}
		switch eff.Redraw {
		case game.RedrawFull:
			m.redrawFull()
			return m, tea.ClearScreen
		case game.RedrawPartial:
			m.redrawInput()
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	return render.Text(m.lines)
}

// Err returns the first journal error seen while running.
func (m *Model) Err() error {
	return m.journalErr
}

func (m *Model) redrawFull() {
	m.lines = render.Full(m.session.State(), m.width)
}

func (m *Model) redrawInput() {
	st := m.session.State()
	row, ok := render.InputRow(st)
	if !ok || row >= len(m.lines) {
		m.redrawFull()
		return
	}
	m.lines[row] = render.InputLine(st, m.width)
}

func (m *Model) record(r model.Round) {
	if m.journal == nil {
		return
	}
	r.AnsweredAt = m.now()
	if _, err := m.journal.InsertRound(context.Background(), r); err != nil && m.journalErr == nil {
		m.journalErr = err
	}
}
