package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store implementation. It is safe for concurrent
// use and hands out copies, never its internal slices.
type MemoryStore struct {
	mu        sync.RWMutex
	events    map[string]models.Event
	feedback  map[string][]models.Feedback
	alerts    map[string][]models.Alert
	issues    map[string][]models.Issue
	sentiment map[string][]models.SentimentRecord // keyed by eventID + "/" + timeframe
}

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events:    make(map[string]models.Event),
		feedback:  make(map[string][]models.Feedback),
		alerts:    make(map[string][]models.Alert),
		issues:    make(map[string][]models.Issue),
		sentiment: make(map[string][]models.SentimentRecord),
	}
}

func (s *MemoryStore) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	s.events[event.ID] = event
	return event, nil
}

func (s *MemoryStore) FindEvent(ctx context.Context, id string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return &event, nil
}

func (s *MemoryStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (s *MemoryStore) AddFeedback(ctx context.Context, fb models.Feedback) (models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fb.ID == "" {
		fb.ID = uuid.NewString()
	}
	s.feedback[fb.EventID] = append(s.feedback[fb.EventID], fb)
	return fb, nil
}

func (s *MemoryStore) ListFeedback(ctx context.Context, eventID string) ([]models.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Feedback(nil), s.feedback[eventID]...), nil
}

func (s *MemoryStore) AddAlert(ctx context.Context, alert models.Alert) (models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	s.alerts[alert.EventID] = append(s.alerts[alert.EventID], alert)
	return alert, nil
}

func (s *MemoryStore) ListAlerts(ctx context.Context, eventID string) ([]models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Alert(nil), s.alerts[eventID]...), nil
}

func (s *MemoryStore) AddIssue(ctx context.Context, issue models.Issue) (models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if issue.ID == "" {
		issue.ID = uuid.NewString()
	}
	s.issues[issue.EventID] = append(s.issues[issue.EventID], issue)
	return issue, nil
}

func (s *MemoryStore) ListIssues(ctx context.Context, eventID string) ([]models.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Issue(nil), s.issues[eventID]...), nil
}

// IncrementSentimentBucket bumps the class count and total of the bucket at
// the given timestamp, creating it when absent. The per-event series stays
// sorted by timestamp ascending.
func (s *MemoryStore) IncrementSentimentBucket(ctx context.Context, eventID, timeframe string, bucket time.Time, sentiment string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := eventID + "/" + timeframe
	records := s.sentiment[key]

	idx := -1
	for i := range records {
		if records[i].Timestamp.Equal(bucket) {
			idx = i
			break
		}
	}
	if idx < 0 {
		records = append(records, models.SentimentRecord{
			EventID:   eventID,
			Timeframe: timeframe,
			Timestamp: bucket,
		})
		idx = len(records) - 1
	}

	switch sentiment {
	case models.SentimentPositive:
		records[idx].Positive++
	case models.SentimentNegative:
		records[idx].Negative++
	default:
		records[idx].Neutral++
	}
	records[idx].Total++

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	s.sentiment[key] = records
	return nil
}

func (s *MemoryStore) ListSentimentRecords(ctx context.Context, eventID, timeframe string) ([]models.SentimentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.SentimentRecord(nil), s.sentiment[eventID+"/"+timeframe]...), nil
}
