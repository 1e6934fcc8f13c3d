// Package autoblock derives the dependent blocks (commute, buffer, family
// time) that accompany an operation block. Generation is independent of any
// existing schedule; callers collision-check the result before committing it.
package autoblock

import (
	"fmt"
	"time"

	"github.com/julianstephens/levos/internal/models"
	"github.com/julianstephens/levos/internal/timegrid"
)

const (
	RoadDuration   = 25 // minutes
	BufferDuration = 30
	FamDuration    = 50

	// MinRoadStart: no commute block before 07:00.
	MinRoadStart = 7.0
	// MaxFamEnd: family time never runs past 22:00.
	MaxFamEnd = 22.0
)

// Generate produces the auto blocks for an anchor at the given start hour
// and duration. Timing is deterministic for identical inputs; ids embed the
// current unix-millisecond timestamp and are unique within the batch.
func Generate(anchorStart float64, anchorDurationMinutes int) []models.ScheduleBlock {
	ts := time.Now().UnixMilli()
	var blocks []models.ScheduleBlock

	// Commute before the operation, ending as the operation begins.
	roadStart := timegrid.RoundToHalfHour(anchorStart - 0.5)
	if roadStart >= MinRoadStart {
		blocks = append(blocks, models.ScheduleBlock{
			ID:        fmt.Sprintf("ROAD-%d-pre", ts),
			BlockID:   "ROAD",
			StartHour: roadStart,
			Duration:  RoadDuration,
			Auto:      true,
		})
	}

	anchorEnd := anchorStart + float64(anchorDurationMinutes)/60

	blocks = append(blocks, models.ScheduleBlock{
		ID:        fmt.Sprintf("BUFFER-%d", ts),
		BlockID:   "BUFFER",
		StartHour: timegrid.RoundToHalfHour(anchorEnd),
		Duration:  BufferDuration,
		Auto:      true,
	})

	famStart := timegrid.RoundToHalfHour(anchorEnd + 0.5)
	famEnd := famStart + float64(FamDuration)/60
	if famEnd <= MaxFamEnd {
		blocks = append(blocks, models.ScheduleBlock{
			ID:        fmt.Sprintf("FAM-%d", ts),
			BlockID:   "FAM",
			StartHour: famStart,
			Duration:  FamDuration,
			Auto:      true,
		})
	}

	return blocks
}

// ForAnchor generates auto blocks owned by the given anchor block: same
// timing as Generate, with each block stamped with the anchor's instance id.
func ForAnchor(anchor models.ScheduleBlock) []models.ScheduleBlock {
	blocks := Generate(anchor.StartHour, anchor.Duration)
	for i := range blocks {
		blocks[i].AnchorID = anchor.ID
	}
	return blocks
}
