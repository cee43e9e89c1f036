package ingestion

import (
	"context"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
)

// Source fetches raw event mentions from one social platform. Fetched items
// come back as unclassified feedback; the poller classifies and stores them.
type Source interface {
	Name() string
	IsEnabled() bool
	Fetch(ctx context.Context, event *models.Event, since time.Time) ([]models.Feedback, error)
}
