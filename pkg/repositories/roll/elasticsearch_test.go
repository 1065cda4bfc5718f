package roll

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/fadedpez/roadhogs/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBaseRepository is a mock implementation of the Repository interface for testing
type MockBaseRepository struct {
	mock.Mock
}

// SaveRoll implements Repository
func (m *MockBaseRepository) SaveRoll(ctx context.Context, record *entities.RollRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// GetChannelStatistics implements Repository
func (m *MockBaseRepository) GetChannelStatistics(ctx context.Context, channelID string) (*entities.RollStatistics, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(*entities.RollStatistics), args.Error(1)
}

// GetRecentRolls implements Repository
func (m *MockBaseRepository) GetRecentRolls(ctx context.Context, channelID string, limit int) ([]*entities.RollRecord, error) {
	args := m.Called(ctx, channelID, limit)
	return args.Get(0).([]*entities.RollRecord), args.Error(1)
}

// Close implements Repository
func (m *MockBaseRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

// fakeESTransport serves canned responses in place of a live cluster and
// records every bulk request body it sees
type fakeESTransport struct {
	mu         sync.Mutex
	status     int    // response status, 200 when zero
	body       string // response body, a clean bulk reply when empty
	err        error  // transport-level error, returned instead of a response
	bulkBodies []string
}

func (t *fakeESTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err != nil {
		return nil, t.err
	}

	if req.Body != nil && strings.HasSuffix(req.URL.Path, "/_bulk") {
		payload, _ := io.ReadAll(req.Body)
		t.bulkBodies = append(t.bulkBodies, string(payload))
	}

	status := t.status
	if status == 0 {
		status = http.StatusOK
	}
	body := t.body
	if body == "" {
		body = `{"took":1,"errors":false,"items":[]}`
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header: http.Header{
			"Content-Type":      []string{"application/json"},
			"X-Elastic-Product": []string{"Elasticsearch"},
		},
	}, nil
}

func (t *fakeESTransport) bulkRequests() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.bulkBodies...)
}

// testArchiver builds an archiver around the fake transport, skipping the
// index bootstrap a live constructor would run
func testArchiver(t *testing.T, base Repository, transport *fakeESTransport, batchSize int) *ElasticsearchArchiver {
	t.Helper()

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://localhost:9200"},
		Transport: transport,
	})
	require.NoError(t, err)

	config := DefaultElasticsearchConfig()
	config.BatchSize = batchSize

	return &ElasticsearchArchiver{
		base:   base,
		client: client,
		config: config,
	}
}

func (r *ElasticsearchArchiver) bufferedEvents() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buffer)
}

func archiveRecord(id string) *entities.RollRecord {
	return &entities.RollRecord{
		ID:         id,
		GuildID:    "guild-1",
		ChannelID:  "chan-1",
		UserID:     "user-1",
		Animal:     "Wolf",
		Category:   "Forest",
		Background: "Ninja",
		RolledAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestArchiverBuffersOnSaveRoll(t *testing.T) {
	base := new(MockBaseRepository)
	transport := &fakeESTransport{}
	archiver := testArchiver(t, base, transport, 50)

	record := archiveRecord("roll-1")
	base.On("SaveRoll", mock.Anything, record).Return(nil)

	require.NoError(t, archiver.SaveRoll(context.Background(), record))

	assert.Equal(t, 1, archiver.bufferedEvents(), "event should sit in the buffer until flush")
	assert.Empty(t, transport.bulkRequests(), "below the batch size nothing should be indexed")
	base.AssertExpectations(t)
}

func TestArchiverSaveRollBaseError(t *testing.T) {
	base := new(MockBaseRepository)
	archiver := testArchiver(t, base, &fakeESTransport{}, 50)

	baseErr := errors.New("database locked")
	base.On("SaveRoll", mock.Anything, mock.Anything).Return(baseErr)

	err := archiver.SaveRoll(context.Background(), archiveRecord("roll-1"))

	assert.ErrorIs(t, err, baseErr)
	assert.Zero(t, archiver.bufferedEvents(), "an event the base repository rejected should not be archived")
}

func TestArchiverSaveRollFlushesAtBatchSize(t *testing.T) {
	base := new(MockBaseRepository)
	transport := &fakeESTransport{}
	archiver := testArchiver(t, base, transport, 2)

	base.On("SaveRoll", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, archiver.SaveRoll(context.Background(), archiveRecord("roll-1")))
	assert.Empty(t, transport.bulkRequests())

	require.NoError(t, archiver.SaveRoll(context.Background(), archiveRecord("roll-2")))

	assert.Zero(t, archiver.bufferedEvents(), "hitting the batch size should flush the buffer")
	require.Len(t, transport.bulkRequests(), 1)
}

func TestArchiverFlushEmptiesBuffer(t *testing.T) {
	base := new(MockBaseRepository)
	transport := &fakeESTransport{}
	archiver := testArchiver(t, base, transport, 50)

	record := archiveRecord("roll-1")
	base.On("SaveRoll", mock.Anything, record).Return(nil)
	require.NoError(t, archiver.SaveRoll(context.Background(), record))

	require.NoError(t, archiver.Flush(context.Background()))

	assert.Zero(t, archiver.bufferedEvents())
	bulks := transport.bulkRequests()
	require.Len(t, bulks, 1)
	assert.Contains(t, bulks[0], `"_id":"roll-1"`, "bulk action should target the record ID")
	assert.Contains(t, bulks[0], `"animal":"Wolf"`)
	assert.Contains(t, bulks[0], `"background":"Ninja"`)

	// A second flush with nothing buffered should not touch the cluster
	require.NoError(t, archiver.Flush(context.Background()))
	assert.Len(t, transport.bulkRequests(), 1)
}

func TestArchiverRebuffersOnBulkResponseError(t *testing.T) {
	base := new(MockBaseRepository)
	transport := &fakeESTransport{
		status: http.StatusServiceUnavailable,
		body:   `{"error":"unavailable"}`,
	}
	archiver := testArchiver(t, base, transport, 50)

	base.On("SaveRoll", mock.Anything, mock.Anything).Return(nil)
	require.NoError(t, archiver.SaveRoll(context.Background(), archiveRecord("roll-1")))

	err := archiver.Flush(context.Background())

	assert.Error(t, err, "an HTTP error reply should fail the flush")
	assert.Equal(t, 1, archiver.bufferedEvents(), "event should be re-buffered after a failed bulk response")

	// Once the cluster recovers, the retried flush drains the buffer
	transport.mu.Lock()
	transport.status = 0
	transport.body = ""
	transport.mu.Unlock()

	require.NoError(t, archiver.Flush(context.Background()))
	assert.Zero(t, archiver.bufferedEvents())
}

func TestArchiverRebuffersOnTransportError(t *testing.T) {
	base := new(MockBaseRepository)
	transport := &fakeESTransport{err: errors.New("connection refused")}
	archiver := testArchiver(t, base, transport, 50)

	base.On("SaveRoll", mock.Anything, mock.Anything).Return(nil)
	require.NoError(t, archiver.SaveRoll(context.Background(), archiveRecord("roll-1")))

	err := archiver.Flush(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, archiver.bufferedEvents(), "event should be re-buffered after a transport error")
}

func TestArchiverRebuffersOnItemFailures(t *testing.T) {
	base := new(MockBaseRepository)
	transport := &fakeESTransport{
		body: `{"took":1,"errors":true,"items":[{"index":{"status":429}}]}`,
	}
	archiver := testArchiver(t, base, transport, 50)

	base.On("SaveRoll", mock.Anything, mock.Anything).Return(nil)
	require.NoError(t, archiver.SaveRoll(context.Background(), archiveRecord("roll-1")))

	err := archiver.Flush(context.Background())

	assert.Error(t, err, "a 200 bulk reply with item failures should fail the flush")
	assert.Equal(t, 1, archiver.bufferedEvents(), "event should be re-buffered after item failures")
}

func TestArchiverDelegatesReadsToBase(t *testing.T) {
	base := new(MockBaseRepository)
	archiver := testArchiver(t, base, &fakeESTransport{}, 50)
	ctx := context.Background()

	stats := &entities.RollStatistics{ChannelID: "chan-1", TotalRolls: 3}
	base.On("GetChannelStatistics", mock.Anything, "chan-1").Return(stats, nil)

	records := []*entities.RollRecord{archiveRecord("roll-1")}
	base.On("GetRecentRolls", mock.Anything, "chan-1", 5).Return(records, nil)

	gotStats, err := archiver.GetChannelStatistics(ctx, "chan-1")
	require.NoError(t, err)
	assert.Same(t, stats, gotStats, "statistics reads should come straight from the base repository")

	gotRecords, err := archiver.GetRecentRolls(ctx, "chan-1", 5)
	require.NoError(t, err)
	assert.Equal(t, records, gotRecords)

	base.AssertExpectations(t)
}

func TestArchiverCloseFlushesAndClosesBase(t *testing.T) {
	base := new(MockBaseRepository)
	transport := &fakeESTransport{}
	archiver := testArchiver(t, base, transport, 50)

	base.On("SaveRoll", mock.Anything, mock.Anything).Return(nil)
	base.On("Close").Return(nil)

	require.NoError(t, archiver.SaveRoll(context.Background(), archiveRecord("roll-1")))
	require.NoError(t, archiver.Close())

	assert.Zero(t, archiver.bufferedEvents(), "close should flush buffered events")
	assert.Len(t, transport.bulkRequests(), 1)
	base.AssertExpectations(t)
}
