package roll

import (
	"context"

	"github.com/fadedpez/roadhogs/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_roll

// Repository defines storage operations for roll events. Only event
// metadata is stored; generated sheets themselves are never persisted.
type Repository interface {
	// SaveRoll records one roll event
	SaveRoll(ctx context.Context, record *entities.RollRecord) error

	// GetChannelStatistics aggregates roll activity for a channel
	GetChannelStatistics(ctx context.Context, channelID string) (*entities.RollStatistics, error)

	// GetRecentRolls returns the most recent roll events for a channel,
	// newest first
	GetRecentRolls(ctx context.Context, channelID string, limit int) ([]*entities.RollRecord, error)

	// Close closes any resources used by the repository
	Close() error
}
