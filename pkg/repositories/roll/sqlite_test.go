package roll

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, repo.Close())
	})

	return repo
}

func TestSQLiteRepositorySaveAndAggregate(t *testing.T) {
	repo := newTestSQLiteRepository(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []struct {
		channel    string
		animal     string
		category   string
		background string
		offset     time.Duration
	}{
		{"chan-1", "Wolf", "Forest", "Ninja", 0},
		{"chan-1", "Fox", "Forest", "Biker", time.Minute},
		{"chan-1", "Dog", "Urban", "Ninja", 2 * time.Minute},
		{"chan-2", "Cat", "Urban", "Trucker", 3 * time.Minute},
	}
	for _, r := range records {
		require.NoError(t, repo.SaveRoll(ctx, newRecord(r.channel, "user-1", r.animal, r.category, r.background, base.Add(r.offset))))
	}

	stats, err := repo.GetChannelStatistics(ctx, "chan-1")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalRolls)
	assert.Equal(t, 2, stats.Backgrounds["Ninja"])
	assert.Equal(t, 1, stats.Backgrounds["Biker"])
	assert.Equal(t, 2, stats.Categories["Forest"])
	assert.True(t, stats.LastRolledAt.Equal(base.Add(2*time.Minute)),
		"last rolled should be the newest chan-1 record, got %v", stats.LastRolledAt)
}

func TestSQLiteRepositoryRecentRolls(t *testing.T) {
	repo := newTestSQLiteRepository(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, animal := range []string{"Wolf", "Dog", "Otter"} {
		require.NoError(t, repo.SaveRoll(ctx, newRecord("chan-1", "user-1", animal, "Forest", "Ninja", base.Add(time.Duration(i)*time.Minute))))
	}

	recent, err := repo.GetRecentRolls(ctx, "chan-1", 2)
	require.NoError(t, err)

	require.Len(t, recent, 2)
	assert.Equal(t, "Otter", recent[0].Animal, "newest first")
	assert.Equal(t, "Dog", recent[1].Animal)
	assert.NotEmpty(t, recent[0].ID, "stored records keep their IDs")
}

func TestSQLiteRepositoryEmptyChannel(t *testing.T) {
	repo := newTestSQLiteRepository(t)

	stats, err := repo.GetChannelStatistics(context.Background(), "nowhere")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalRolls)
	assert.True(t, stats.LastRolledAt.IsZero())
}
