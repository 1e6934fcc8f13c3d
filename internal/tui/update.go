package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/levos/internal/models"
	"github.com/julianstephens/levos/internal/schedule"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.blocks())-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevDay):
			return m.changeDay(-1), nil

		case key.Matches(msg, m.keys.NextDay):
			return m.changeDay(1), nil

		case key.Matches(msg, m.keys.Reload):
			if err := m.loadDay(m.date); err != nil {
				m.status = err.Error()
			} else {
				m.status = "reloaded"
			}
			return m, nil

		case key.Matches(msg, m.keys.Earlier):
			return m.mutate(func(b models.ScheduleBlock) error {
				return m.engine.Shift(m.days, m.date, b.ID, -0.5)
			}), nil

		case key.Matches(msg, m.keys.Later):
			return m.mutate(func(b models.ScheduleBlock) error {
				return m.engine.Shift(m.days, m.date, b.ID, 0.5)
			}), nil

		case key.Matches(msg, m.keys.Grow):
			return m.mutate(func(b models.ScheduleBlock) error {
				return m.engine.Resize(m.days, m.date, b.ID, 30)
			}), nil

		case key.Matches(msg, m.keys.Shrink):
			return m.mutate(func(b models.ScheduleBlock) error {
				return m.engine.Resize(m.days, m.date, b.ID, -30)
			}), nil

		case key.Matches(msg, m.keys.Delete):
			return m.mutate(func(b models.ScheduleBlock) error {
				return m.engine.Remove(m.days, m.date, b.ID)
			}), nil
		}
	}

	return m, nil
}

// mutate applies fn to the selected block and persists the day when it
// succeeds. Rejections surface in the status line and leave state untouched.
func (m Model) mutate(fn func(models.ScheduleBlock) error) Model {
	block, ok := m.selected()
	if !ok {
		m.status = "no block selected"
		return m
	}

	if err := fn(block); err != nil {
		if reason, ok := schedule.ReasonOf(err); ok {
			m.status = fmt.Sprintf("rejected: %s", reason)
		} else {
			m.status = err.Error()
		}
		return m
	}

	if err := m.store.SaveDay(m.date, m.blocks()); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return m
	}

	// The mutation may have regenerated dependents; keep the cursor on the
	// block it was pointing at when it survived.
	if idx, _, ok := models.Find(m.blocks(), block.ID); ok {
		m.cursor = idx
	} else if m.cursor >= len(m.blocks()) {
		m.cursor = len(m.blocks()) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	}
	m.status = ""
	return m
}

func (m Model) changeDay(delta int) Model {
	next := shiftDate(m.date, delta)
	if err := m.loadDay(next); err != nil {
		m.status = err.Error()
		return m
	}
	m.cursor = 0
	m.status = ""
	return m
}
