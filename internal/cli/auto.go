package cli

import (
	"fmt"

	"github.com/julianstephens/levos/internal/autoblock"
	"github.com/julianstephens/levos/internal/timegrid"
)

type AutoCmd struct {
	Start    float64 `arg:"" help:"Operation start hour (e.g. 8.5 for 08:30)."`
	Duration int     `arg:"" help:"Operation duration in minutes."`
}

// Run previews the dependent blocks an operation at the given slot would
// generate, without touching any stored day.
func (c *AutoCmd) Run(ctx *Context) error {
	blocks := autoblock.Generate(c.Start, c.Duration)
	if len(blocks) == 0 {
		fmt.Println("No auto blocks for that slot.")
		return nil
	}

	for _, b := range blocks {
		name := b.BlockID
		if def, ok := ctx.Catalog.Block(b.BlockID); ok {
			name = def.Name
		}
		fmt.Printf("%s-%s  %s (%dm)\n",
			timegrid.FormatHour(b.StartHour), timegrid.FormatHour(b.EndHour()), name, b.Duration)
	}
	return nil
}
