package progress

import (
	"testing"
	"time"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore()
	if err := store.Open(":memory:"); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)

	st := State{
		CompletedLessons: []string{"l-1-1", "l-1-2"},
		XP:               100,
		Achievements: []Unlocked{
			{ID: "first-query", UnlockedAt: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)},
		},
		ActivityDates: []string{"2026-01-05"},
	}
	if err := store.Save("learner", st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load("learner")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.XP != 100 {
		t.Errorf("XP = %d, want 100", got.XP)
	}
	if len(got.CompletedLessons) != 2 {
		t.Errorf("completed = %v, want 2 entries", got.CompletedLessons)
	}
	if len(got.Achievements) != 1 || got.Achievements[0].ID != "first-query" {
		t.Errorf("achievements = %v", got.Achievements)
	}
	if !got.Achievements[0].UnlockedAt.Equal(st.Achievements[0].UnlockedAt) {
		t.Errorf("unlock time = %v, want %v", got.Achievements[0].UnlockedAt, st.Achievements[0].UnlockedAt)
	}
}

func TestSQLiteStoreLoadUnknownLearner(t *testing.T) {
	store := setupSQLiteStore(t)

	got, err := store.Load("nobody")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.XP != 0 || len(got.CompletedLessons) != 0 {
		t.Errorf("unknown learner should load empty, got %+v", got)
	}
}

func TestSQLiteStoreSaveOverwrites(t *testing.T) {
	store := setupSQLiteStore(t)

	if err := store.Save("learner", State{XP: 50}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("learner", State{XP: 150}); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load("learner")
	if err != nil {
		t.Fatal(err)
	}
	if got.XP != 150 {
		t.Errorf("XP = %d, want 150", got.XP)
	}
}

func TestSQLiteStoreToleratesCorruptEntries(t *testing.T) {
	store := setupSQLiteStore(t)

	// A hand-edited or corrupted value must not poison the whole state.
	_, err := store.db.Exec(`
		INSERT INTO learner_state (learner_id, key, value, updated_at)
		VALUES ('learner', ?, 'not-json', CURRENT_TIMESTAMP),
		       ('learner', ?, '75', CURRENT_TIMESTAMP)
	`, keyCompletedLessons, keyXP)
	if err != nil {
		t.Fatal(err)
	}

	got, err := store.Load("learner")
	if err != nil {
		t.Fatalf("Load should not fail on corrupt entries: %v", err)
	}
	if len(got.CompletedLessons) != 0 {
		t.Errorf("corrupt entry should deserialize to empty, got %v", got.CompletedLessons)
	}
	if got.XP != 75 {
		t.Errorf("intact keys should still load, XP = %d", got.XP)
	}
}
