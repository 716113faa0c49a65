package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seant15/gamify-timesheet/internal/engine"
)

func newTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSnapshotStore(db)
}

func TestLoadEmpty(t *testing.T) {
	store := newTestStore(t)
	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok, "fresh database has no snapshot")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	snap := engine.Snapshot{
		Tasks: []engine.Task{{
			ID: "t1", Title: "Deep Work Block", Day: engine.Monday, PillarID: "p2",
			StartTime: "09:00", EndTime: "10:30", DurationMinutes: 90, Completed: true,
			Tags: []string{"focus"}, CreatedAt: 1700000000000,
		}},
		Stats:       &engine.UserStats{TotalCredits: 300, LifetimeEarnings: 300, Level: 1},
		Pillars:     engine.DefaultPillars(),
		Rewards:     engine.DefaultRewards(),
		ClaimedDays: map[engine.Day]bool{engine.Monday: true},
	}
	require.NoError(t, store.Save(snap))

	got, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, snap.Tasks, got.Tasks)
	assert.Equal(t, snap.Stats, got.Stats)
	assert.Equal(t, snap.Pillars, got.Pillars)
	assert.Equal(t, snap.Rewards, got.Rewards)
	assert.Equal(t, snap.ClaimedDays, got.ClaimedDays)
}

// The store keeps exactly one snapshot: a later save fully replaces the
// earlier one, never merges with it.
func TestSaveReplacesPrevious(t *testing.T) {
	store := newTestStore(t)

	first := engine.Snapshot{
		Stats:       &engine.UserStats{TotalCredits: 100, LifetimeEarnings: 100, Level: 1},
		ClaimedDays: map[engine.Day]bool{engine.Monday: true},
	}
	require.NoError(t, store.Save(first))

	second := engine.Snapshot{
		Stats: &engine.UserStats{TotalCredits: 700, LifetimeEarnings: 700, Level: 1},
	}
	require.NoError(t, store.Save(second))

	got, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 700, got.Stats.TotalCredits)
	assert.Empty(t, got.ClaimedDays, "replaced snapshot must not leak keys from the old one")
}
