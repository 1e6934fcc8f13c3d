package scenario

import (
	"fmt"
	"strings"

	"github.com/julianstephens/levos/internal/models"
)

// Confidence grades a detection result.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Detection is the detector's verdict for a day's schedule.
type Detection struct {
	Scenario   string     `json:"scenario"`
	Confidence Confidence `json:"confidence"`
	Reason     string     `json:"reason"`
}

// Detect infers which scenario likely produced a schedule by classifying
// the first operation block's start hour. A day without operations is
// assumed to be a weekend.
func Detect(blocks []models.ScheduleBlock) Detection {
	var op *models.ScheduleBlock
	for i := range blocks {
		if strings.HasPrefix(blocks[i].BlockID, "OP_") {
			op = &blocks[i]
			break
		}
	}

	if op == nil {
		return Detection{
			Scenario:   "w",
			Confidence: ConfidenceMedium,
			Reason:     "No operation blocks found - assuming weekend",
		}
	}

	start := op.StartHour
	switch {
	case start <= 9:
		return Detection{"1", ConfidenceHigh, fmt.Sprintf("Operation starts at %.1f, indicating 1st in queue", start)}
	case start <= 11:
		return Detection{"2", ConfidenceHigh, fmt.Sprintf("Operation starts at %.1f, indicating 2nd in queue", start)}
	case start <= 13:
		return Detection{"3", ConfidenceHigh, fmt.Sprintf("Operation starts at %.1f, indicating 3rd in queue", start)}
	default:
		return Detection{"4", ConfidenceHigh, fmt.Sprintf("Operation starts at %.1f, indicating 4th+ in queue", start)}
	}
}
