package roll

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fadedpez/roadhogs/pkg/entities"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite table schema
const createRollRecordsTableSQL = `
	CREATE TABLE IF NOT EXISTS roll_records (
		id TEXT PRIMARY KEY,
		guild_id TEXT,
		channel_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		animal TEXT NOT NULL,
		category TEXT NOT NULL,
		background TEXT NOT NULL,
		rolled_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_roll_records_channel ON roll_records(channel_id);
	CREATE INDEX IF NOT EXISTS idx_roll_records_user ON roll_records(user_id)`

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Ensure the directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if _, err := db.Exec(createRollRecordsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveRoll records one roll event
func (r *SQLiteRepository) SaveRoll(ctx context.Context, record *entities.RollRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO roll_records (id, guild_id, channel_id, user_id, animal, category, background, rolled_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.GuildID, record.ChannelID, record.UserID,
		record.Animal, record.Category, record.Background, record.RolledAt)
	if err != nil {
		return fmt.Errorf("failed to save roll record: %w", err)
	}
	return nil
}

// GetChannelStatistics aggregates roll activity for a channel
func (r *SQLiteRepository) GetChannelStatistics(ctx context.Context, channelID string) (*entities.RollStatistics, error) {
	stats := &entities.RollStatistics{
		ChannelID:   channelID,
		Backgrounds: make(map[string]int),
		Categories:  make(map[string]int),
	}

	countQuery := `SELECT COUNT(*) FROM roll_records WHERE channel_id = ?`
	if err := r.db.QueryRowContext(ctx, countQuery, channelID).Scan(&stats.TotalRolls); err != nil {
		return nil, fmt.Errorf("failed to count rolls: %w", err)
	}

	// The newest record carries the last-rolled time
	newest, err := r.GetRecentRolls(ctx, channelID, 1)
	if err != nil {
		return nil, err
	}
	if len(newest) > 0 {
		stats.LastRolledAt = newest[0].RolledAt
	}

	backgroundsQuery := `
		SELECT background, COUNT(*)
		FROM roll_records WHERE channel_id = ?
		GROUP BY background`
	rows, err := r.db.QueryContext(ctx, backgroundsQuery, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate backgrounds: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("failed to scan background row: %w", err)
		}
		stats.Backgrounds[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	categoriesQuery := `
		SELECT category, COUNT(*)
		FROM roll_records WHERE channel_id = ?
		GROUP BY category`
	catRows, err := r.db.QueryContext(ctx, categoriesQuery, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate categories: %w", err)
	}
	defer catRows.Close()
	for catRows.Next() {
		var name string
		var count int
		if err := catRows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		stats.Categories[name] = count
	}
	if err := catRows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetRecentRolls returns the most recent roll events for a channel
func (r *SQLiteRepository) GetRecentRolls(ctx context.Context, channelID string, limit int) ([]*entities.RollRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, guild_id, channel_id, user_id, animal, category, background, rolled_at
		FROM roll_records
		WHERE channel_id = ?
		ORDER BY rolled_at DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, channelID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent rolls: %w", err)
	}
	defer rows.Close()

	var records []*entities.RollRecord
	for rows.Next() {
		record := &entities.RollRecord{}
		if err := rows.Scan(&record.ID, &record.GuildID, &record.ChannelID, &record.UserID,
			&record.Animal, &record.Category, &record.Background, &record.RolledAt); err != nil {
			return nil, fmt.Errorf("failed to scan roll record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
