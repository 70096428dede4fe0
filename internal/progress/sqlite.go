package progress

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

// Persisted state layout: four independent entries per learner. There is no
// schema version field; format changes are not migrated.
const (
	keyCompletedLessons = "completed_lessons" // JSON array of lesson ids
	keyXP               = "xp"                // stringified integer
	keyAchievements     = "achievements"      // JSON array of {id, unlocked_at}
	keyActivityDates    = "activity_dates"    // JSON array of YYYY-MM-DD
)

// SQLiteStore persists learner state in a local SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore creates an unopened store.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

// Open opens the database. Use ":memory:" for an in-memory store.
func (s *SQLiteStore) Open(path string) error {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL", path)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads a learner's persisted state. Missing keys default to
// empty/zero; malformed values are silently treated as empty.
func (s *SQLiteStore) Load(learnerID string) (State, error) {
	var st State
	if s.db == nil {
		return st, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(
		`SELECT key, value FROM learner_state WHERE learner_id = ?`, learnerID)
	if err != nil {
		return st, fmt.Errorf("failed to load learner state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return st, fmt.Errorf("failed to scan learner state: %w", err)
		}

		switch key {
		case keyCompletedLessons:
			_ = json.Unmarshal([]byte(value), &st.CompletedLessons)
		case keyXP:
			st.XP, _ = strconv.Atoi(value)
		case keyAchievements:
			_ = json.Unmarshal([]byte(value), &st.Achievements)
		case keyActivityDates:
			_ = json.Unmarshal([]byte(value), &st.ActivityDates)
		}
	}
	if err := rows.Err(); err != nil {
		return st, fmt.Errorf("error iterating learner state: %w", err)
	}

	return st, nil
}

// Save writes all four state entries in one transaction.
func (s *SQLiteStore) Save(learnerID string, st State) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	completed, err := json.Marshal(st.CompletedLessons)
	if err != nil {
		return fmt.Errorf("failed to encode completed lessons: %w", err)
	}
	achievements, err := json.Marshal(st.Achievements)
	if err != nil {
		return fmt.Errorf("failed to encode achievements: %w", err)
	}
	dates, err := json.Marshal(st.ActivityDates)
	if err != nil {
		return fmt.Errorf("failed to encode activity dates: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const upsert = `
		INSERT INTO learner_state (learner_id, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (learner_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	entries := map[string]string{
		keyCompletedLessons: string(completed),
		keyXP:               strconv.Itoa(st.XP),
		keyAchievements:     string(achievements),
		keyActivityDates:    string(dates),
	}
	for key, value := range entries {
		if _, err := tx.Exec(upsert, learnerID, key, value); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit learner state: %w", err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
