package models

// Category tags group block kinds for display and engine rules.
type Category string

const (
	CategoryOperation Category = "OP"
	CategoryBuffer    Category = "BUFFER"
	CategorySacred    Category = "SACRED"
	CategoryPolechat  Category = "POLECHAT"
	CategorySomalab   Category = "SOMALAB"
	CategoryLab       Category = "LAB"
	CategoryCare      Category = "CARE"
	CategoryNight     Category = "NIGHT"
	CategoryFree      Category = "FREE"
)

// BlockDefinition is an immutable catalog entry for a block kind.
type BlockDefinition struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji"`
	Category Category `json:"category"`
	Color    string   `json:"color"`
	Duration int      `json:"duration"` // default, minutes
	MinDur   int      `json:"minDur"`
	MaxDur   int      `json:"maxDur"`
}

// HomeWindow is the stretch of time available for work at home before
// leaving for an operation.
type HomeWindow struct {
	Start    float64 `json:"start"`
	Duration int     `json:"duration"` // minutes
}

// Scenario encodes a recurring daily pattern, keyed by a short code
// ("1".."4" for weekday queue positions, "w" for weekend).
type Scenario struct {
	Key        string      `json:"key"`
	Name       string      `json:"name"`
	Desc       string      `json:"desc"`
	WakeUp     float64     `json:"wakeUp"`
	OpStart    float64     `json:"opStart,omitempty"`
	HasOpStart bool        `json:"-"`
	HomeWindow *HomeWindow `json:"homeWindow,omitempty"`
	CanGym     bool        `json:"canGym,omitempty"`
	ArriveBy   string      `json:"arriveBy,omitempty"`
	Note       string      `json:"note,omitempty"`
	IsWeekend  bool        `json:"isWeekend,omitempty"`
}

// WorkContext names the project a generic work block represents and the
// block kind such blocks are tagged with.
type WorkContext struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	Color   string `json:"color"`
	BlockID string `json:"blockId"`
}
