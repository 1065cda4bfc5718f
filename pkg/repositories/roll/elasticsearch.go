package roll

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/fadedpez/roadhogs/pkg/entities"
)

// ElasticsearchConfig holds configuration for the roll-event archiver
type ElasticsearchConfig struct {
	URL       string
	Username  string
	Password  string
	IndexName string
	BatchSize int // Flush the buffer once it reaches this many events
}

// DefaultElasticsearchConfig returns a default configuration
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:       "http://localhost:9200",
		IndexName: "roadhogs_rolls",
		BatchSize: 50,
	}
}

// rollDocument is the Elasticsearch document shape for one roll event
type rollDocument struct {
	GuildID    string `json:"guild_id"`
	ChannelID  string `json:"channel_id"`
	UserID     string `json:"user_id"`
	Animal     string `json:"animal"`
	Category   string `json:"category"`
	Background string `json:"background"`
	RolledAt   string `json:"rolled_at"`
}

// ElasticsearchArchiver decorates a base Repository, buffering roll events
// and bulk-indexing them into Elasticsearch. Reads always come from the
// base repository; Elasticsearch is an archive, not the source of truth.
type ElasticsearchArchiver struct {
	base   Repository
	client *elasticsearch.Client
	config *ElasticsearchConfig

	mu     sync.Mutex
	buffer []*entities.RollRecord
}

// NewElasticsearchArchiver creates an archiver around the base repository
func NewElasticsearchArchiver(base Repository, config *ElasticsearchConfig) (*ElasticsearchArchiver, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	archiver := &ElasticsearchArchiver{
		base:   base,
		client: client,
		config: config,
	}

	if err := archiver.ensureIndex(context.Background()); err != nil {
		return nil, err
	}

	return archiver, nil
}

// ensureIndex creates the roll index with its mapping if it doesn't exist
func (r *ElasticsearchArchiver) ensureIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.config.IndexName})
	if err != nil {
		return fmt.Errorf("error checking if roll index exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != 404 {
		return nil
	}

	mapping := `{
		"mappings": {
			"properties": {
				"guild_id": { "type": "keyword" },
				"channel_id": { "type": "keyword" },
				"user_id": { "type": "keyword" },
				"animal": { "type": "keyword" },
				"category": { "type": "keyword" },
				"background": { "type": "keyword" },
				"rolled_at": { "type": "date" }
			}
		}
	}`

	req := esapi.IndicesCreateRequest{
		Index: r.config.IndexName,
		Body:  bytes.NewReader([]byte(mapping)),
	}

	createRes, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating roll index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("error creating roll index: %s", createRes.String())
	}

	return nil
}

// SaveRoll saves to the base repository and buffers the event for indexing
func (r *ElasticsearchArchiver) SaveRoll(ctx context.Context, record *entities.RollRecord) error {
	if err := r.base.SaveRoll(ctx, record); err != nil {
		return err
	}

	r.mu.Lock()
	r.buffer = append(r.buffer, record)
	shouldFlush := len(r.buffer) >= r.config.BatchSize
	r.mu.Unlock()

	if shouldFlush {
		if err := r.Flush(ctx); err != nil {
			// The base repository already has the event; archiving is
			// best effort and must not fail the roll
			log.Printf("Error flushing roll archive: %v", err)
		}
	}

	return nil
}

// Flush bulk-indexes all buffered roll events
func (r *ElasticsearchArchiver) Flush(ctx context.Context) error {
	r.mu.Lock()
	pending := r.buffer
	r.buffer = nil
	r.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	var body bytes.Buffer
	for _, record := range pending {
		action := fmt.Sprintf(`{"index":{"_index":%q,"_id":%q}}`, r.config.IndexName, record.ID)
		body.WriteString(action)
		body.WriteByte('\n')

		doc, err := json.Marshal(rollDocument{
			GuildID:    record.GuildID,
			ChannelID:  record.ChannelID,
			UserID:     record.UserID,
			Animal:     record.Animal,
			Category:   record.Category,
			Background: record.Background,
			RolledAt:   record.RolledAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
		if err != nil {
			return fmt.Errorf("error marshaling roll document: %w", err)
		}
		body.Write(doc)
		body.WriteByte('\n')
	}

	req := esapi.BulkRequest{
		Body: bytes.NewReader(body.Bytes()),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		r.requeue(pending)
		return fmt.Errorf("error bulk indexing roll events: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		r.requeue(pending)
		return fmt.Errorf("error bulk indexing roll events: %s", res.String())
	}

	// A 200 bulk reply can still carry per-item failures
	var bulkResponse struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulkResponse); err != nil {
		r.requeue(pending)
		return fmt.Errorf("error parsing bulk response: %w", err)
	}
	if bulkResponse.Errors {
		r.requeue(pending)
		return fmt.Errorf("bulk indexing reported item failures")
	}

	log.Printf("Archived %d roll events to Elasticsearch", len(pending))
	return nil
}

// requeue puts events back at the front of the buffer so the next flush
// retries them. Documents are keyed by record ID, so a partial success
// followed by a replay overwrites rather than duplicates.
func (r *ElasticsearchArchiver) requeue(records []*entities.RollRecord) {
	r.mu.Lock()
	r.buffer = append(records, r.buffer...)
	r.mu.Unlock()
}

// GetChannelStatistics delegates to the base repository
func (r *ElasticsearchArchiver) GetChannelStatistics(ctx context.Context, channelID string) (*entities.RollStatistics, error) {
	return r.base.GetChannelStatistics(ctx, channelID)
}

// GetRecentRolls delegates to the base repository
func (r *ElasticsearchArchiver) GetRecentRolls(ctx context.Context, channelID string, limit int) ([]*entities.RollRecord, error) {
	return r.base.GetRecentRolls(ctx, channelID, limit)
}

// Close flushes any buffered events and closes the base repository
func (r *ElasticsearchArchiver) Close() error {
	if err := r.Flush(context.Background()); err != nil {
		log.Printf("Error flushing roll archive on close: %v", err)
	}
	return r.base.Close()
}
