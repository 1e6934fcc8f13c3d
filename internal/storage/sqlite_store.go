package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/levos/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS blocks (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	block_id TEXT NOT NULL,
	start_hour REAL NOT NULL,
	duration INTEGER NOT NULL,
	auto INTEGER NOT NULL DEFAULT 0,
	anchor_id TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_blocks_date ON blocks(date);
CREATE TABLE IF NOT EXISTS day_scenarios (
	date TEXT PRIMARY KEY,
	scenario TEXT NOT NULL
);
`

// SQLiteStore persists schedules in a local SQLite database.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'levos init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema is idempotent; applying it on load also upgrades databases
	// created before the day_scenarios table existed.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveDay replaces the stored block list for a date atomically.
func (s *SQLiteStore) SaveDay(date string, blocks []models.ScheduleBlock) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM blocks WHERE date = ?", date); err != nil {
		return fmt.Errorf("failed to clear day %s: %w", date, err)
	}

	stmt, err := tx.Prepare("INSERT INTO blocks (id, date, block_id, start_hour, duration, auto, anchor_id) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, b := range blocks {
		auto := 0
		if b.Auto {
			auto = 1
		}
		if _, err := stmt.Exec(b.ID, date, b.BlockID, b.StartHour, b.Duration, auto, b.AnchorID); err != nil {
			return fmt.Errorf("failed to insert block %s: %w", b.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetDay(date string) ([]models.ScheduleBlock, error) {
	rows, err := s.db.Query(
		"SELECT id, block_id, start_hour, duration, auto, anchor_id FROM blocks WHERE date = ? ORDER BY start_hour",
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query day %s: %w", date, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

func (s *SQLiteStore) GetAllDays() (models.Days, error) {
	rows, err := s.db.Query("SELECT date, id, block_id, start_hour, duration, auto, anchor_id FROM blocks ORDER BY date, start_hour")
	if err != nil {
		return nil, fmt.Errorf("failed to query days: %w", err)
	}
	defer rows.Close()

	days := models.Days{}
	for rows.Next() {
		var date string
		var b models.ScheduleBlock
		var auto int
		if err := rows.Scan(&date, &b.ID, &b.BlockID, &b.StartHour, &b.Duration, &auto, &b.AnchorID); err != nil {
			return nil, err
		}
		b.Auto = auto != 0
		days[date] = append(days[date], b)
	}
	return days, rows.Err()
}

func (s *SQLiteStore) DeleteDay(date string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM blocks WHERE date = ?", date); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM day_scenarios WHERE date = ?", date); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) SetDayScenario(date, scenarioKey string) error {
	_, err := s.db.Exec(
		"INSERT INTO day_scenarios (date, scenario) VALUES (?, ?) ON CONFLICT(date) DO UPDATE SET scenario = excluded.scenario",
		date, scenarioKey,
	)
	return err
}

func (s *SQLiteStore) GetDayScenario(date string) (string, error) {
	var scenario string
	err := s.db.QueryRow("SELECT scenario FROM day_scenarios WHERE date = ?", date).Scan(&scenario)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return scenario, err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func scanBlocks(rows *sql.Rows) ([]models.ScheduleBlock, error) {
	var blocks []models.ScheduleBlock
	for rows.Next() {
		var b models.ScheduleBlock
		var auto int
		if err := rows.Scan(&b.ID, &b.BlockID, &b.StartHour, &b.Duration, &auto, &b.AnchorID); err != nil {
			return nil, err
		}
		b.Auto = auto != 0
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}
