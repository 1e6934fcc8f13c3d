// Package scenario expands a scenario code into a full day's block set and
// provides the reverse heuristic that guesses which scenario produced an
// existing schedule.
package scenario

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/julianstephens/levos/internal/catalog"
	"github.com/julianstephens/levos/internal/models"
	"github.com/julianstephens/levos/internal/timegrid"
)

const (
	sleepDuration = 480 // minutes
	gymStart      = 12.5
	famCutoff     = 22.0
	eveningCutoff = 23.0
	maxEveningMin = 180
)

// Expander derives day schedules from the scenario catalog.
type Expander struct {
	catalog *catalog.Catalog
}

func NewExpander(c *catalog.Catalog) *Expander {
	return &Expander{catalog: c}
}

// Apply expands a scenario into an ordered day schedule. operationCount
// selects OP_1..OP_3 (anything else falls back to OP_1); contextKey tags the
// home-window and evening work blocks, and may be empty to omit them.
// Unknown scenario keys yield an empty schedule.
//
// The auto-block sequence here deliberately differs from the general
// autoblock generator: the first commute leg is not grid-rounded and has no
// 07:00 floor, and the day gains a return commute and an evening work block.
func (e *Expander) Apply(scenarioKey string, operationCount int, contextKey string) []models.ScheduleBlock {
	scen, ok := e.catalog.Scenario(scenarioKey)
	if !ok {
		return []models.ScheduleBlock{}
	}

	ctx, hasCtx := e.catalog.Context(contextKey)
	ts := time.Now().UnixMilli()

	var blocks []models.ScheduleBlock
	add := func(id, kind string, start float64, duration int, auto bool) {
		blocks = append(blocks, models.ScheduleBlock{
			ID:        id,
			BlockID:   kind,
			StartHour: start,
			Duration:  duration,
			Auto:      auto,
		})
	}

	if scen.IsWeekend {
		// Fixed weekend template; the 03:00 sleep start is a literal, not
		// derived from the scenario's wake-up hour.
		add(fmt.Sprintf("SLEEP-%d", ts), "SLEEP", 27.0, sleepDuration, false)
		add(fmt.Sprintf("FAM-%d", ts), "FAM", 12.0, 120, false)
		add(fmt.Sprintf("WALK-%d", ts), "WALK", 14.5, 90, false)
		add(fmt.Sprintf("SPORT_SPA-%d", ts), "SPORT_SPA", 16.5, 150, false)
		add(fmt.Sprintf("HYPER-%d", ts), "HYPER", 20.0, maxEveningMin, false)
		return sortedByStart(blocks)
	}

	if !scen.HasOpStart {
		return sortedByStart(blocks)
	}

	opKind := operationKind(operationCount)
	opDuration := 180
	if def, ok := e.catalog.Block(opKind); ok {
		opDuration = def.Duration
	}

	// Overnight sleep, 8 hours before the canonical wake-up, expressed on
	// the extended night grid.
	add(fmt.Sprintf("SLEEP-%d", ts), "SLEEP", scen.WakeUp-8+24, sleepDuration, false)

	if scen.HomeWindow != nil && hasCtx {
		add(fmt.Sprintf("%s-%d-home", ctx.BlockID, ts), ctx.BlockID, scen.HomeWindow.Start, scen.HomeWindow.Duration, false)
	}

	if scen.CanGym {
		add(fmt.Sprintf("SPORT-%d", ts), "SPORT", gymStart, 90, false)
	}

	anchorID := fmt.Sprintf("%s-%d", opKind, ts)
	add(fmt.Sprintf("ROAD-%d-pre", ts), "ROAD", scen.OpStart-0.5, 25, true)
	add(anchorID, opKind, scen.OpStart, opDuration, false)

	opEnd := scen.OpStart + float64(opDuration)/60
	add(fmt.Sprintf("BUFFER-%d", ts), "BUFFER", timegrid.RoundToHalfHour(opEnd), 30, true)
	add(fmt.Sprintf("ROAD-%d-post", ts), "ROAD", timegrid.RoundToHalfHour(opEnd+0.5), 25, true)

	famStart := timegrid.RoundToHalfHour(opEnd + 1)
	if famStart < famCutoff {
		add(fmt.Sprintf("FAM-%d", ts), "FAM", famStart, 50, true)
	}

	eveStart := timegrid.RoundToHalfHour(famStart + 1)
	if eveStart < eveningCutoff && hasCtx {
		duration := int(math.Min(maxEveningMin, (24-eveStart)*60))
		add(fmt.Sprintf("%s-%d-eve", ctx.BlockID, ts), ctx.BlockID, eveStart, duration, false)
	}

	// Dependents generated here belong to the operation block.
	for i := range blocks {
		if blocks[i].Auto {
			blocks[i].AnchorID = anchorID
		}
	}

	return sortedByStart(blocks)
}

func operationKind(count int) string {
	switch count {
	case 2:
		return "OP_2"
	case 3:
		return "OP_3"
	default:
		return "OP_1"
	}
}

func sortedByStart(blocks []models.ScheduleBlock) []models.ScheduleBlock {
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartHour < blocks[j].StartHour
	})
	return blocks
}
