package ingestion

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/config"
	"github.com/Aniket-Subudh1/EventSentix/internal/models"
	"github.com/Aniket-Subudh1/EventSentix/internal/store"
	"github.com/sirupsen/logrus"
)

// Service ingests feedback from direct submissions and social polling. Every
// stored record is classified (when not already classified upstream) and
// counted into the hourly and daily sentiment buckets the trend analyzer
// reads.
type Service struct {
	config   *config.Config
	store    store.Store
	registry *Registry
	sources  []Source
}

// NewService creates an ingestion service. The stream registry is injected so
// ownership of per-event polling state stays with the caller.
func NewService(cfg *config.Config, st store.Store, registry *Registry) *Service {
	return &Service{
		config:   cfg,
		store:    st,
		registry: registry,
		sources: []Source{
			NewTwitterSource(cfg.TwitterBearerToken),
			NewInstagramSource(cfg.InstagramAccessToken),
			NewLinkedInSource(cfg.LinkedInAccessToken),
		},
	}
}

// Registry exposes the injected stream registry
func (s *Service) Registry() *Registry {
	return s.registry
}

// Ingest classifies (when needed), stores, and buckets one feedback record
func (s *Service) Ingest(ctx context.Context, fb models.Feedback) (models.Feedback, error) {
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}
	if fb.Source == "" {
		fb.Source = models.SourceDirect
	}
	if fb.Sentiment == "" {
		fb.Sentiment, fb.SentimentScore = Classify(fb.Text)
	}
	if fb.Sentiment == models.SentimentNegative && fb.IssueType == "" {
		fb.IssueType = DetectIssueType(fb.Text)
	}

	stored, err := s.store.AddFeedback(ctx, fb)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("storing feedback for event %s: %w", fb.EventID, err)
	}

	hourBucket := stored.CreatedAt.UTC().Truncate(time.Hour)
	dayBucket := stored.CreatedAt.UTC().Truncate(24 * time.Hour)
	if err := s.store.IncrementSentimentBucket(ctx, stored.EventID, models.TimeframeHour, hourBucket, stored.Sentiment); err != nil {
		return models.Feedback{}, fmt.Errorf("updating hourly sentiment bucket: %w", err)
	}
	if err := s.store.IncrementSentimentBucket(ctx, stored.EventID, models.TimeframeDay, dayBucket, stored.Sentiment); err != nil {
		return models.Feedback{}, fmt.Errorf("updating daily sentiment bucket: %w", err)
	}

	return stored, nil
}

// StartStream begins social polling for the event until it is stopped or the
// event ends. Replaces any existing stream for the same event.
func (s *Service) StartStream(eventID string) error {
	event, err := s.store.FindEvent(context.Background(), eventID)
	if err != nil {
		return fmt.Errorf("starting stream for event %s: %w", eventID, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.registry.Register(eventID, cancel)

	interval := time.Duration(s.config.PollIntervalMinutes) * time.Minute
	go s.pollLoop(ctx, event, interval)

	logrus.Infof("Started social polling for event %s (every %v)", eventID, interval)
	return nil
}

// StopStream stops social polling for the event
func (s *Service) StopStream(eventID string) {
	s.registry.Deregister(eventID)
	logrus.Infof("Stopped social polling for event %s", eventID)
}

func (s *Service) pollLoop(ctx context.Context, event *models.Event, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastPoll := time.Now().Add(-interval)
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if now.After(event.EndDate.Add(time.Hour)) {
				logrus.Infof("Event %s ended, stopping social polling", event.ID)
				s.registry.Deregister(event.ID)
				return
			}
			s.pollOnce(ctx, event, lastPoll)
			lastPoll = now
		}
	}
}

// pollOnce fans out over all enabled sources concurrently and ingests
// everything they return. Individual source failures are logged and skipped;
// polling is best-effort.
func (s *Service) pollOnce(ctx context.Context, event *models.Event, since time.Time) {
	var wg sync.WaitGroup
	results := make(chan []models.Feedback, len(s.sources))

	for _, source := range s.sources {
		if !source.IsEnabled() {
			continue
		}
		wg.Add(1)
		go func(src Source) {
			defer wg.Done()

			feedback, err := src.Fetch(ctx, event, since)
			if err != nil {
				logrus.Errorf("Error fetching from %s for event %s: %v", src.Name(), event.ID, err)
				return
			}
			results <- feedback
		}(source)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	count := 0
	for batch := range results {
		for _, fb := range batch {
			if _, err := s.Ingest(ctx, fb); err != nil {
				logrus.Errorf("Failed to ingest polled feedback: %v", err)
				continue
			}
			count++
		}
	}

	if count > 0 {
		logrus.Infof("Ingested %d polled feedback item(s) for event %s", count, event.ID)
	}
}
