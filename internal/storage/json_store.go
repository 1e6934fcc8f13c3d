package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/levos/internal/models"
)

type jsonFile struct {
	Version   int               `json:"version"`
	Days      models.Days       `json:"days"`
	Scenarios map[string]string `json:"scenarios"`
}

// JSONStore persists schedules in a single JSON file. Useful for debugging
// and for environments where SQLite is unwanted.
type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version:   1,
		Days:      models.Days{},
		Scenarios: map[string]string{},
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'levos init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.file.Days == nil {
		s.file.Days = models.Days{}
	}
	if s.file.Scenarios == nil {
		s.file.Scenarios = map[string]string{}
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write to a temp file then rename for atomicity.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *JSONStore) SaveDay(date string, blocks []models.ScheduleBlock) error {
	if len(blocks) == 0 {
		delete(s.file.Days, date)
	} else {
		s.file.Days[date] = append([]models.ScheduleBlock{}, blocks...)
	}
	return s.save()
}

func (s *JSONStore) GetDay(date string) ([]models.ScheduleBlock, error) {
	return append([]models.ScheduleBlock{}, s.file.Days[date]...), nil
}

func (s *JSONStore) GetAllDays() (models.Days, error) {
	days := models.Days{}
	for date, blocks := range s.file.Days {
		days[date] = append([]models.ScheduleBlock{}, blocks...)
	}
	return days, nil
}

func (s *JSONStore) DeleteDay(date string) error {
	delete(s.file.Days, date)
	delete(s.file.Scenarios, date)
	return s.save()
}

func (s *JSONStore) SetDayScenario(date, scenarioKey string) error {
	s.file.Scenarios[date] = scenarioKey
	return s.save()
}

func (s *JSONStore) GetDayScenario(date string) (string, error) {
	return s.file.Scenarios[date], nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
