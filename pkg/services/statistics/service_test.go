package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fadedpez/roadhogs/pkg/entities"
	mock_roll "github.com/fadedpez/roadhogs/pkg/repositories/roll/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetChannelReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_roll.NewMockRepository(ctrl)
	service := NewService(repo)

	lastRolled := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.EXPECT().GetChannelStatistics(gomock.Any(), "chan-1").Return(&entities.RollStatistics{
		ChannelID:  "chan-1",
		TotalRolls: 10,
		Backgrounds: map[string]int{
			"Ninja":   5,
			"Biker":   3,
			"Trooper": 2,
		},
		Categories: map[string]int{
			"Forest": 4,
			"Urban":  4,
			"Zoo":    2,
		},
		LastRolledAt: lastRolled,
	}, nil)

	report, err := service.GetChannelReport(context.Background(), "chan-1")
	require.NoError(t, err)

	assert.Equal(t, 10, report.TotalRolls)
	assert.Equal(t, lastRolled, report.LastRolledAt)

	require.Len(t, report.Backgrounds, 3)
	assert.Equal(t, Count{Name: "Ninja", Rolls: 5, Share: 50.0}, report.Backgrounds[0])
	assert.Equal(t, Count{Name: "Biker", Rolls: 3, Share: 30.0}, report.Backgrounds[1])
	assert.Equal(t, Count{Name: "Trooper", Rolls: 2, Share: 20.0}, report.Backgrounds[2])

	// Ties sort alphabetically
	require.Len(t, report.Categories, 3)
	assert.Equal(t, "Forest", report.Categories[0].Name)
	assert.Equal(t, "Urban", report.Categories[1].Name)
	assert.Equal(t, "Zoo", report.Categories[2].Name)
}

func TestGetChannelReportEmptyChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_roll.NewMockRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetChannelStatistics(gomock.Any(), "quiet").Return(&entities.RollStatistics{
		ChannelID:   "quiet",
		Backgrounds: map[string]int{},
		Categories:  map[string]int{},
	}, nil)

	report, err := service.GetChannelReport(context.Background(), "quiet")
	require.NoError(t, err)

	assert.Zero(t, report.TotalRolls)
	assert.Empty(t, report.Backgrounds)
	assert.Empty(t, report.Categories)
}

func TestGetChannelReportRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_roll.NewMockRepository(ctrl)
	service := NewService(repo)

	repoErr := errors.New("database locked")
	repo.EXPECT().GetChannelStatistics(gomock.Any(), "chan-1").Return(nil, repoErr)

	report, err := service.GetChannelReport(context.Background(), "chan-1")

	assert.Nil(t, report)
	assert.ErrorIs(t, err, repoErr)
}
