package store

import (
	"context"
	"errors"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
)

// ErrEventNotFound is returned by FindEvent when no event has the given id.
var ErrEventNotFound = errors.New("event not found")

// Store defines the contract for event data access. List methods return the
// full snapshot for the event at call time; SentimentRecords come back ordered
// by timestamp ascending.
type Store interface {
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)
	FindEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)

	AddFeedback(ctx context.Context, fb models.Feedback) (models.Feedback, error)
	ListFeedback(ctx context.Context, eventID string) ([]models.Feedback, error)

	AddAlert(ctx context.Context, alert models.Alert) (models.Alert, error)
	ListAlerts(ctx context.Context, eventID string) ([]models.Alert, error)

	AddIssue(ctx context.Context, issue models.Issue) (models.Issue, error)
	ListIssues(ctx context.Context, eventID string) ([]models.Issue, error)

	IncrementSentimentBucket(ctx context.Context, eventID, timeframe string, bucket time.Time, sentiment string) error
	ListSentimentRecords(ctx context.Context, eventID, timeframe string) ([]models.SentimentRecord, error)
}
