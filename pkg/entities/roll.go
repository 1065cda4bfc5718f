package entities

import "time"

// RollRecord captures the outcome of a single /palladium invocation for
// usage statistics. Attribute scores are deliberately not recorded; the
// sheet itself is never persisted.
type RollRecord struct {
	ID         string
	GuildID    string
	ChannelID  string
	UserID     string
	Animal     string
	Category   string
	Background string
	RolledAt   time.Time
}

// RollStatistics is the aggregate view of roll activity in a channel
type RollStatistics struct {
	ChannelID    string
	TotalRolls   int
	Backgrounds  map[string]int // background name -> times rolled
	Categories   map[string]int // animal category -> times rolled
	LastRolledAt time.Time
}

// BackgroundShare returns the fraction of rolls in this channel that
// produced the named background, as a percentage
func (s *RollStatistics) BackgroundShare(name string) float64 {
	if s.TotalRolls == 0 {
		return 0.0
	}
	return float64(s.Backgrounds[name]) / float64(s.TotalRolls) * 100.0
}

// CategoryShare returns the fraction of rolls in this channel that landed
// in the named animal category, as a percentage
func (s *RollStatistics) CategoryShare(name string) float64 {
	if s.TotalRolls == 0 {
		return 0.0
	}
	return float64(s.Categories[name]) / float64(s.TotalRolls) * 100.0
}
