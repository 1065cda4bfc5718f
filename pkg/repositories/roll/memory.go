package roll

import (
	"context"
	"sync"

	"github.com/fadedpez/roadhogs/pkg/entities"
	"github.com/google/uuid"
)

// MemoryRepository implements Repository with in-memory storage. Counts
// reset whenever the bot restarts.
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of channelID to roll events, oldest first
	records map[string][]*entities.RollRecord
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[string][]*entities.RollRecord),
	}
}

// SaveRoll records one roll event
func (r *MemoryRepository) SaveRoll(ctx context.Context, record *entities.RollRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	r.records[record.ChannelID] = append(r.records[record.ChannelID], record)
	return nil
}

// GetChannelStatistics aggregates roll activity for a channel
func (r *MemoryRepository) GetChannelStatistics(ctx context.Context, channelID string) (*entities.RollStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &entities.RollStatistics{
		ChannelID:   channelID,
		Backgrounds: make(map[string]int),
		Categories:  make(map[string]int),
	}

	for _, record := range r.records[channelID] {
		stats.TotalRolls++
		stats.Backgrounds[record.Background]++
		stats.Categories[record.Category]++
		if record.RolledAt.After(stats.LastRolledAt) {
			stats.LastRolledAt = record.RolledAt
		}
	}

	return stats, nil
}

// GetRecentRolls returns the most recent roll events for a channel
func (r *MemoryRepository) GetRecentRolls(ctx context.Context, channelID string, limit int) ([]*entities.RollRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.records[channelID]
	if limit <= 0 || limit > len(records) {
		limit = len(records)
	}

	// Newest first
	result := make([]*entities.RollRecord, 0, limit)
	for i := len(records) - 1; i >= len(records)-limit; i-- {
		result = append(result, records[i])
	}

	return result, nil
}

// Close is a no-op for the memory repository
func (r *MemoryRepository) Close() error {
	return nil
}
