package store

import (
	"context"
	"testing"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAndFindEvent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	created, err := s.CreateEvent(ctx, models.Event{Name: "Launch"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := s.FindEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch", found.Name)

	withID, err := s.CreateEvent(ctx, models.Event{ID: "ev-fixed", Name: "Summit"})
	require.NoError(t, err)
	assert.Equal(t, "ev-fixed", withID.ID)
}

func TestMemoryStore_FindEventNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.FindEvent(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestMemoryStore_ListEventsSorted(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, id := range []string{"c", "a", "b"} {
		_, err := s.CreateEvent(ctx, models.Event{ID: id})
		require.NoError(t, err)
	}

	events, err := s.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
	assert.Equal(t, "c", events[2].ID)
}

func TestMemoryStore_FeedbackScopedByEvent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.AddFeedback(ctx, models.Feedback{EventID: "ev1", Text: "great"})
	require.NoError(t, err)
	fb, err := s.AddFeedback(ctx, models.Feedback{EventID: "ev2", Text: "meh"})
	require.NoError(t, err)
	assert.NotEmpty(t, fb.ID)

	listed, err := s.ListFeedback(ctx, "ev1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "great", listed[0].Text)

	empty, err := s.ListFeedback(ctx, "ev3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.AddAlert(ctx, models.Alert{EventID: "ev1", Severity: models.SeverityLow})
	require.NoError(t, err)

	first, err := s.ListAlerts(ctx, "ev1")
	require.NoError(t, err)
	first[0].Severity = models.SeverityCritical

	second, err := s.ListAlerts(ctx, "ev1")
	require.NoError(t, err)
	assert.Equal(t, models.SeverityLow, second[0].Severity)
}

func TestMemoryStore_IncrementSentimentBucket(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	hour := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	require.NoError(t, s.IncrementSentimentBucket(ctx, "ev1", models.TimeframeHour, hour, models.SentimentPositive))
	require.NoError(t, s.IncrementSentimentBucket(ctx, "ev1", models.TimeframeHour, hour, models.SentimentPositive))
	require.NoError(t, s.IncrementSentimentBucket(ctx, "ev1", models.TimeframeHour, hour, models.SentimentNegative))
	require.NoError(t, s.IncrementSentimentBucket(ctx, "ev1", models.TimeframeHour, hour, models.SentimentNeutral))

	records, err := s.ListSentimentRecords(ctx, "ev1", models.TimeframeHour)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].Positive)
	assert.Equal(t, 1, records[0].Negative)
	assert.Equal(t, 1, records[0].Neutral)
	assert.Equal(t, 4, records[0].Total)
}

func TestMemoryStore_SentimentSeriesSortedAndScoped(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// Out of order on purpose
	require.NoError(t, s.IncrementSentimentBucket(ctx, "ev1", models.TimeframeHour, base.Add(2*time.Hour), models.SentimentPositive))
	require.NoError(t, s.IncrementSentimentBucket(ctx, "ev1", models.TimeframeHour, base, models.SentimentNegative))
	require.NoError(t, s.IncrementSentimentBucket(ctx, "ev1", models.TimeframeDay, base, models.SentimentPositive))

	hourly, err := s.ListSentimentRecords(ctx, "ev1", models.TimeframeHour)
	require.NoError(t, err)
	require.Len(t, hourly, 2)
	assert.True(t, hourly[0].Timestamp.Before(hourly[1].Timestamp))

	daily, err := s.ListSentimentRecords(ctx, "ev1", models.TimeframeDay)
	require.NoError(t, err)
	assert.Len(t, daily, 1)
}
