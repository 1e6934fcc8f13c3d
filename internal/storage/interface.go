package storage

import "github.com/julianstephens/levos/internal/models"

// Provider persists day schedules. The engine itself never touches storage;
// callers load a Days mapping, run engine mutations, and save back.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Day schedules
	SaveDay(date string, blocks []models.ScheduleBlock) error
	GetDay(date string) ([]models.ScheduleBlock, error)
	GetAllDays() (models.Days, error)
	DeleteDay(date string) error

	// Scenario tags (which scenario a day was generated from, if any)
	SetDayScenario(date, scenarioKey string) error
	GetDayScenario(date string) (string, error)

	// Utils
	GetConfigPath() string
}
