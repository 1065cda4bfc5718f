package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/fadedpez/roadhogs/pkg/repositories/roll"
)

// Service provides aggregate views of roll activity for display
type Service struct {
	repository roll.Repository
}

// NewService creates a new statistics service
func NewService(repository roll.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Count is one named bucket in a distribution, with its share of all rolls
type Count struct {
	Name  string
	Rolls int
	Share float64 // percentage of total rolls
}

// ChannelReport is the render-ready summary of a channel's roll history
type ChannelReport struct {
	ChannelID    string
	TotalRolls   int
	Backgrounds  []Count // sorted by count descending, then name
	Categories   []Count
	LastRolledAt time.Time
}

// GetChannelReport builds the roll distribution report for a channel
func (s *Service) GetChannelReport(ctx context.Context, channelID string) (*ChannelReport, error) {
	stats, err := s.repository.GetChannelStatistics(ctx, channelID)
	if err != nil {
		return nil, err
	}

	report := &ChannelReport{
		ChannelID:    channelID,
		TotalRolls:   stats.TotalRolls,
		LastRolledAt: stats.LastRolledAt,
	}

	report.Backgrounds = sortedCounts(stats.Backgrounds, stats.TotalRolls)
	report.Categories = sortedCounts(stats.Categories, stats.TotalRolls)

	return report, nil
}

// sortedCounts turns a name->count map into a descending distribution
func sortedCounts(counts map[string]int, total int) []Count {
	result := make([]Count, 0, len(counts))
	for name, rolls := range counts {
		share := 0.0
		if total > 0 {
			share = float64(rolls) / float64(total) * 100.0
		}
		result = append(result, Count{Name: name, Rolls: rolls, Share: share})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Rolls != result[j].Rolls {
			return result[i].Rolls > result[j].Rolls
		}
		return result[i].Name < result[j].Name
	})

	return result
}
