package cli

import (
	"fmt"
	"sort"

	"github.com/julianstephens/levos/internal/timegrid"
)

type PlaceCmd struct {
	Block string  `arg:"" help:"Block kind to place (see 'levos blocks')."`
	Start float64 `arg:"" help:"Start hour on the extended day grid (e.g. 8.5 for 08:30)."`
	Date  string  `help:"Target date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *PlaceCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	days, err := ctx.LoadDay(date)
	if err != nil {
		return err
	}

	placed, err := ctx.Engine.Place(days, date, c.Block, c.Start)
	if err != nil {
		return err
	}
	if err := ctx.SaveDays(days); err != nil {
		return err
	}

	fmt.Printf("Placed %s at %s on %s\n", placed.BlockID, timegrid.FormatHour(placed.StartHour), date)
	ctx.PrintDay(date, days[date])
	return nil
}

type MoveCmd struct {
	ID    string  `arg:"" help:"Block id to move."`
	Start float64 `arg:"" help:"New start hour."`
	Date  string  `help:"Source date (YYYY-MM-DD or 'today')." default:"today"`
	To    string  `help:"Destination date; defaults to the source date."`
}

func (c *MoveCmd) Run(ctx *Context) error {
	from, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}
	to := from
	if c.To != "" {
		if to, err = ResolveDate(c.To); err != nil {
			return err
		}
	}

	days, err := ctx.LoadDay(from)
	if err != nil {
		return err
	}
	if to != from {
		dest, err := ctx.Store.GetDay(to)
		if err != nil {
			return fmt.Errorf("failed to load day %s: %w", to, err)
		}
		days[to] = dest
	}

	if err := ctx.Engine.Move(days, from, c.ID, to, c.Start); err != nil {
		return err
	}
	if err := ctx.SaveDays(days); err != nil {
		return err
	}

	fmt.Printf("Moved %s to %s on %s\n", c.ID, timegrid.FormatHour(timegrid.RoundToHalfHour(c.Start)), to)
	ctx.PrintDay(to, days[to])
	return nil
}

type ShiftCmd struct {
	ID      string `arg:"" help:"Block id to shift."`
	Minutes int    `arg:"" help:"Shift amount in minutes, negative for earlier (e.g. -30)."`
	Date    string `help:"Target date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ShiftCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	days, err := ctx.LoadDay(date)
	if err != nil {
		return err
	}

	if err := ctx.Engine.Shift(days, date, c.ID, float64(c.Minutes)/60); err != nil {
		return err
	}
	if err := ctx.SaveDays(days); err != nil {
		return err
	}

	fmt.Printf("Shifted %s by %dm\n", c.ID, c.Minutes)
	ctx.PrintDay(date, days[date])
	return nil
}

type ResizeCmd struct {
	ID      string `arg:"" help:"Block id to resize."`
	Minutes int    `arg:"" help:"Duration change in minutes, negative to shrink (e.g. 30)."`
	Date    string `help:"Target date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ResizeCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	days, err := ctx.LoadDay(date)
	if err != nil {
		return err
	}

	if err := ctx.Engine.Resize(days, date, c.ID, c.Minutes); err != nil {
		return err
	}
	if err := ctx.SaveDays(days); err != nil {
		return err
	}

	fmt.Printf("Resized %s by %dm\n", c.ID, c.Minutes)
	ctx.PrintDay(date, days[date])
	return nil
}

type RemoveCmd struct {
	ID   string `arg:"" help:"Block id to remove."`
	Date string `help:"Target date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *RemoveCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	days, err := ctx.LoadDay(date)
	if err != nil {
		return err
	}

	if err := ctx.Engine.Remove(days, date, c.ID); err != nil {
		return err
	}
	if err := ctx.SaveDays(days); err != nil {
		return err
	}

	fmt.Printf("Removed %s from %s\n", c.ID, date)
	ctx.PrintDay(date, days[date])
	return nil
}

type BlocksCmd struct{}

func (c *BlocksCmd) Run(ctx *Context) error {
	defs := ctx.Catalog.Blocks()
	ids := make([]string, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		def := defs[id]
		fmt.Printf("%-10s %s %-18s %dm (%d-%dm)  [%s]\n",
			id, def.Emoji, def.Name, def.Duration, def.MinDur, def.MaxDur, def.Category)
	}
	return nil
}
