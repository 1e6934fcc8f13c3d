// Package tui is an interactive day viewer over the schedule store. It
// supports cursor navigation plus half-hour shifts, resizes and deletion,
// persisting after every accepted mutation.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/levos/internal/catalog"
	"github.com/julianstephens/levos/internal/constants"
	"github.com/julianstephens/levos/internal/models"
	"github.com/julianstephens/levos/internal/schedule"
	"github.com/julianstephens/levos/internal/storage"
)

type Model struct {
	store   storage.Provider
	engine  *schedule.Store
	catalog *catalog.Catalog

	date   string
	days   models.Days
	cursor int

	keys     KeyMap
	help     help.Model
	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, engine *schedule.Store, cat *catalog.Catalog, date string) (Model, error) {
	m := Model{
		store:   store,
		engine:  engine,
		catalog: cat,
		date:    date,
		days:    models.Days{},
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	if err := m.loadDay(date); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) loadDay(date string) error {
	blocks, err := m.store.GetDay(date)
	if err != nil {
		return fmt.Errorf("failed to load day %s: %w", date, err)
	}
	m.date = date
	m.days = models.Days{date: blocks}
	if m.cursor >= len(blocks) {
		m.cursor = 0
	}
	return nil
}

func (m Model) blocks() []models.ScheduleBlock {
	return m.days[m.date]
}

func (m Model) selected() (models.ScheduleBlock, bool) {
	blocks := m.blocks()
	if m.cursor < 0 || m.cursor >= len(blocks) {
		return models.ScheduleBlock{}, false
	}
	return blocks[m.cursor], true
}

// shiftDate moves the viewed date by delta days.
func shiftDate(date string, delta int) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, delta).Format(constants.DateFormat)
}
