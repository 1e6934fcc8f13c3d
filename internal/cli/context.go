package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/levos/internal/catalog"
	"github.com/julianstephens/levos/internal/config"
	"github.com/julianstephens/levos/internal/constants"
	"github.com/julianstephens/levos/internal/models"
	"github.com/julianstephens/levos/internal/schedule"
	"github.com/julianstephens/levos/internal/scenario"
	"github.com/julianstephens/levos/internal/storage"
	"github.com/julianstephens/levos/internal/timegrid"
)

// Context carries the shared dependencies into kong command handlers.
type Context struct {
	Store    storage.Provider
	Catalog  *catalog.Catalog
	Engine   *schedule.Store
	Expander *scenario.Expander
	Config   *config.Config
}

// ResolveDate turns an optional date value into a date key. Empty or "today"
// means the current day.
func ResolveDate(date string) (string, error) {
	if date == "" || date == "today" {
		return time.Now().Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", date, err)
	}
	return date, nil
}

// LoadDay fetches one day's blocks into a fresh Days mapping for the engine.
func (c *Context) LoadDay(date string) (models.Days, error) {
	blocks, err := c.Store.GetDay(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load day %s: %w", date, err)
	}
	return models.Days{date: blocks}, nil
}

// SaveDays persists every day present in the mapping.
func (c *Context) SaveDays(days models.Days) error {
	for date, blocks := range days {
		if err := c.Store.SaveDay(date, blocks); err != nil {
			return fmt.Errorf("failed to save day %s: %w", date, err)
		}
	}
	return nil
}

// PrintDay renders a day's schedule to stdout.
func (c *Context) PrintDay(date string, blocks []models.ScheduleBlock) {
	if len(blocks) == 0 {
		fmt.Printf("%s: no blocks\n", date)
		return
	}

	fmt.Printf("%s\n", date)
	for _, b := range blocks {
		name := b.BlockID
		emoji := " "
		if def, ok := c.Catalog.Block(b.BlockID); ok {
			name = def.Name
			emoji = def.Emoji
		}
		marker := " "
		if b.Auto {
			marker = "*"
		}
		fmt.Printf("  %s-%s %s %s %s(%dm)  [%s]\n",
			timegrid.FormatHour(b.StartHour), timegrid.FormatHour(b.EndHour()),
			marker, emoji, name, b.Duration, b.ID)
	}
}
