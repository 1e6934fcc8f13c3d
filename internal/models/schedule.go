package models

// ScheduleBlock is a single placed block instance in a day's schedule.
// The instance ID is distinct from the block kind (BlockID): many instances
// of the same kind may exist across days.
type ScheduleBlock struct {
	ID        string  `json:"id"`
	BlockID   string  `json:"blockId"`
	StartHour float64 `json:"startHour"` // internal grid hour, [6, 30)
	Duration  int     `json:"duration"`  // minutes
	Auto      bool    `json:"auto,omitempty"`
	// AnchorID links an auto-generated block to the operation block it
	// depends on. Empty for user-placed blocks and for auto blocks saved
	// before anchor tracking existed.
	AnchorID string `json:"anchor,omitempty"`
}

// EndHour returns the block's end on the internal grid. A SLEEP block may
// legitimately end past 30.0; the engine stores the true interval.
func (b ScheduleBlock) EndHour() float64 {
	return b.StartHour + float64(b.Duration)/60
}

// Days maps an ISO date key (YYYY-MM-DD) to that day's blocks, ordered by
// start hour. The caller owns this value; engine mutators either fully apply
// or leave it untouched.
type Days map[string][]ScheduleBlock

// Blocks returns the block list for a day, nil if the day is empty.
func (d Days) Blocks(dateKey string) []ScheduleBlock {
	return d[dateKey]
}

// Find returns the block with the given instance id and its index, or
// (-1, zero, false) when absent.
func Find(blocks []ScheduleBlock, id string) (int, ScheduleBlock, bool) {
	for i, b := range blocks {
		if b.ID == id {
			return i, b, true
		}
	}
	return -1, ScheduleBlock{}, false
}
