package cli

import (
	"fmt"
	"sort"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
	All  bool   `help:"Show every stored day." default:"false"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if c.All {
		days, err := ctx.Store.GetAllDays()
		if err != nil {
			return fmt.Errorf("failed to load days: %w", err)
		}
		if len(days) == 0 {
			fmt.Println("No days stored yet.")
			return nil
		}

		dates := make([]string, 0, len(days))
		for date := range days {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates {
			ctx.PrintDay(date, days[date])
		}
		return nil
	}

	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	blocks, err := ctx.Store.GetDay(date)
	if err != nil {
		return fmt.Errorf("failed to load day %s: %w", date, err)
	}
	ctx.PrintDay(date, blocks)

	if tag, err := ctx.Store.GetDayScenario(date); err == nil && tag != "" {
		if sc, ok := ctx.Catalog.Scenario(tag); ok {
			fmt.Printf("  scenario: %s (%s)\n", tag, sc.Name)
		} else {
			fmt.Printf("  scenario: %s\n", tag)
		}
	}
	return nil
}

type ClearCmd struct {
	Date string `arg:"" help:"Date to clear (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ClearCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteDay(date); err != nil {
		return fmt.Errorf("failed to clear day %s: %w", date, err)
	}
	fmt.Printf("Cleared %s\n", date)
	return nil
}
