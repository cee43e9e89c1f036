package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
	"github.com/Aniket-Subudh1/EventSentix/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStore is a mock implementation of the store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *MockStore) FindEvent(ctx context.Context, id string) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockStore) AddFeedback(ctx context.Context, fb models.Feedback) (models.Feedback, error) {
	args := m.Called(ctx, fb)
	return args.Get(0).(models.Feedback), args.Error(1)
}

func (m *MockStore) ListFeedback(ctx context.Context, eventID string) ([]models.Feedback, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockStore) AddAlert(ctx context.Context, alert models.Alert) (models.Alert, error) {
	args := m.Called(ctx, alert)
	return args.Get(0).(models.Alert), args.Error(1)
}

func (m *MockStore) ListAlerts(ctx context.Context, eventID string) ([]models.Alert, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Alert), args.Error(1)
}

func (m *MockStore) AddIssue(ctx context.Context, issue models.Issue) (models.Issue, error) {
	args := m.Called(ctx, issue)
	return args.Get(0).(models.Issue), args.Error(1)
}

func (m *MockStore) ListIssues(ctx context.Context, eventID string) ([]models.Issue, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Issue), args.Error(1)
}

func (m *MockStore) IncrementSentimentBucket(ctx context.Context, eventID, timeframe string, bucket time.Time, sentiment string) error {
	args := m.Called(ctx, eventID, timeframe, bucket, sentiment)
	return args.Error(0)
}

func (m *MockStore) ListSentimentRecords(ctx context.Context, eventID, timeframe string) ([]models.SentimentRecord, error) {
	args := m.Called(ctx, eventID, timeframe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SentimentRecord), args.Error(1)
}

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func serviceAt(st store.Store, now time.Time) *Service {
	svc := NewService(st)
	svc.now = func() time.Time { return now }
	return svc
}

func eventEnding(end time.Time) *models.Event {
	return &models.Event{
		ID:        "ev1",
		Name:      "Test Event",
		StartDate: end.Add(-48 * time.Hour),
		EndDate:   end,
		Location:  "Hall A",
	}
}

func expectEmptyReads(m *MockStore, eventID string) {
	m.On("ListFeedback", mock.Anything, eventID).Return([]models.Feedback{}, nil)
	m.On("ListAlerts", mock.Anything, eventID).Return([]models.Alert{}, nil)
	m.On("ListIssues", mock.Anything, eventID).Return([]models.Issue{}, nil)
	m.On("ListSentimentRecords", mock.Anything, eventID, models.TimeframeHour).Return([]models.SentimentRecord{}, nil)
	m.On("ListSentimentRecords", mock.Anything, eventID, models.TimeframeDay).Return([]models.SentimentRecord{}, nil)
}

func TestGenerateReport_EventEndedYesterday(t *testing.T) {
	mockStore := &MockStore{}
	event := eventEnding(fixedNow.Add(-24 * time.Hour))
	mockStore.On("FindEvent", mock.Anything, "ev1").Return(event, nil)
	expectEmptyReads(mockStore, "ev1")

	report, err := serviceAt(mockStore, fixedNow).GenerateReport(context.Background(), "ev1", Options{})

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusCompleted, report.EventStatus)
	assert.Equal(t, fixedNow, report.ReportGeneratedAt)
}

func TestGenerateReport_NotYetAvailable(t *testing.T) {
	mockStore := &MockStore{}
	event := eventEnding(fixedNow.Add(72 * time.Hour))
	mockStore.On("FindEvent", mock.Anything, "ev1").Return(event, nil)

	_, err := serviceAt(mockStore, fixedNow).GenerateReport(context.Background(), "ev1", Options{})

	var notYet *NotYetAvailableError
	require.ErrorAs(t, err, &notYet)
	assert.Equal(t, "ev1", notYet.EventID)
	mockStore.AssertNotCalled(t, "ListFeedback", mock.Anything, mock.Anything)
}

func TestGenerateReport_ForceBypassesGate(t *testing.T) {
	mockStore := &MockStore{}
	event := eventEnding(fixedNow.Add(72 * time.Hour))
	mockStore.On("FindEvent", mock.Anything, "ev1").Return(event, nil)
	expectEmptyReads(mockStore, "ev1")

	report, err := serviceAt(mockStore, fixedNow).GenerateReport(context.Background(), "ev1", Options{Force: true})

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusActive, report.EventStatus)
}

func TestGenerateReport_NearEndAllowed(t *testing.T) {
	mockStore := &MockStore{}
	event := eventEnding(fixedNow.Add(3 * time.Hour))
	mockStore.On("FindEvent", mock.Anything, "ev1").Return(event, nil)
	expectEmptyReads(mockStore, "ev1")

	report, err := serviceAt(mockStore, fixedNow).GenerateReport(context.Background(), "ev1", Options{})

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusActive, report.EventStatus)
}

func TestGenerateReport_EventNotFound(t *testing.T) {
	mockStore := &MockStore{}
	mockStore.On("FindEvent", mock.Anything, "missing").Return(nil, store.ErrEventNotFound)

	_, err := serviceAt(mockStore, fixedNow).GenerateReport(context.Background(), "missing", Options{})

	assert.ErrorIs(t, err, store.ErrEventNotFound)
}

func TestGenerateReport_ReadFailureAbortsGeneration(t *testing.T) {
	readFailure := errors.New("connection reset")

	mockStore := &MockStore{}
	event := eventEnding(fixedNow.Add(-time.Hour))
	mockStore.On("FindEvent", mock.Anything, "ev1").Return(event, nil)
	mockStore.On("ListFeedback", mock.Anything, "ev1").Return([]models.Feedback{}, nil)
	mockStore.On("ListAlerts", mock.Anything, "ev1").Return(nil, readFailure)
	mockStore.On("ListIssues", mock.Anything, "ev1").Return([]models.Issue{}, nil)
	mockStore.On("ListSentimentRecords", mock.Anything, "ev1", mock.Anything).Return([]models.SentimentRecord{}, nil)

	report, err := serviceAt(mockStore, fixedNow).GenerateReport(context.Background(), "ev1", Options{})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, readFailure)
}

func TestGenerateReport_EmptyDatasetBoundary(t *testing.T) {
	mockStore := &MockStore{}
	event := eventEnding(fixedNow.Add(-time.Hour))
	mockStore.On("FindEvent", mock.Anything, "ev1").Return(event, nil)
	expectEmptyReads(mockStore, "ev1")

	report, err := serviceAt(mockStore, fixedNow).GenerateReport(context.Background(), "ev1", Options{})

	require.NoError(t, err)
	assert.Zero(t, report.FeedbackAnalysis.Total)
	assert.Zero(t, report.AlertAnalysis.ResolutionRate)
	assert.Zero(t, report.IssueAnalysis.ResolutionRate)
	assert.Zero(t, report.IssueAnalysis.UnresolvedCount)
	assert.Empty(t, report.FeedbackAnalysis.TopPositiveFeedback)
	assert.Empty(t, report.FeedbackAnalysis.TopNegativeFeedback)
	// Only the neutral sentiment midpoint contributes to the score
	assert.Equal(t, 20, report.ExecutiveSummary.OverallScore)
	assert.Equal(t, models.SuccessProblematic, report.ExecutiveSummary.SuccessLevel)
}

func TestGenerateReport_Idempotent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	end := fixedNow.Add(-2 * time.Hour)
	event, err := st.CreateEvent(ctx, *eventEnding(end))
	require.NoError(t, err)

	created := end.Add(-10 * time.Hour)
	for i, sentiment := range []string{
		models.SentimentPositive, models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral,
	} {
		score := map[string]float64{
			models.SentimentPositive: 0.6,
			models.SentimentNegative: -0.7,
			models.SentimentNeutral:  0,
		}[sentiment]
		_, err := st.AddFeedback(ctx, models.Feedback{
			EventID:        event.ID,
			Source:         models.SourceTwitter,
			Text:           "feedback",
			Sentiment:      sentiment,
			SentimentScore: score,
			CreatedAt:      created.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	resolved := created.Add(20 * time.Minute)
	_, err = st.AddAlert(ctx, models.Alert{
		EventID:    event.ID,
		Type:       models.AlertTypeIssue,
		Severity:   models.SeverityHigh,
		Category:   "ops",
		Status:     models.AlertStatusResolved,
		CreatedAt:  created,
		ResolvedAt: &resolved,
	})
	require.NoError(t, err)

	first := serviceAt(st, fixedNow)
	second := serviceAt(st, fixedNow.Add(time.Minute))

	reportA, err := first.GenerateReport(ctx, event.ID, Options{})
	require.NoError(t, err)
	reportB, err := second.GenerateReport(ctx, event.ID, Options{})
	require.NoError(t, err)

	assert.NotEqual(t, reportA.ReportGeneratedAt, reportB.ReportGeneratedAt)

	// Identical except for the generation timestamp
	reportB.ReportGeneratedAt = reportA.ReportGeneratedAt
	assert.Equal(t, reportA, reportB)
}
