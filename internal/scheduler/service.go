package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/config"
	"github.com/Aniket-Subudh1/EventSentix/internal/models"
	"github.com/Aniket-Subudh1/EventSentix/internal/notifications"
	"github.com/Aniket-Subudh1/EventSentix/internal/report"
	"github.com/Aniket-Subudh1/EventSentix/internal/store"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Service periodically sweeps for recently-ended events and generates,
// archives, and announces their reports.
type Service struct {
	config   *config.Config
	store    store.Store
	reports  *report.Service
	archive  store.Archiver
	notifier notifications.Notifier
	cron     *cron.Cron

	mu       sync.Mutex
	reported map[string]bool
}

// NewService creates a new scheduler service. Archive and notifier may be nil
// when those channels are not configured.
func NewService(cfg *config.Config, st store.Store, reports *report.Service, archive store.Archiver, notifier notifications.Notifier) *Service {
	return &Service{
		config:   cfg,
		store:    st,
		reports:  reports,
		archive:  archive,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		reported: make(map[string]bool),
	}
}

// Start begins the scheduled report sweep
func (s *Service) Start() error {
	_, err := s.cron.AddFunc(s.config.ReportSweepSchedule, func() {
		logrus.Info("Starting ended-event report sweep")
		s.Sweep(context.Background())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logrus.Infof("Scheduler started with sweep schedule %q", s.config.ReportSweepSchedule)
	return nil
}

// Stop stops the scheduler
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		logrus.Info("Scheduler stopped")
	}
}

// Sweep generates reports for events that ended within the report window and
// have not been reported yet. Failures are logged per event and do not stop
// the sweep.
func (s *Service) Sweep(ctx context.Context) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		logrus.Errorf("Report sweep failed to list events: %v", err)
		return
	}

	now := time.Now()
	window := time.Duration(s.config.ReportWindowHours) * time.Hour

	for _, event := range events {
		if !s.shouldReport(event, now, window) {
			continue
		}

		rep, err := s.reports.GenerateReport(ctx, event.ID, report.Options{})
		if err != nil {
			logrus.WithField("event_id", event.ID).Errorf("Sweep report generation failed: %v", err)
			continue
		}

		if s.archive != nil {
			if err := s.archive.ArchiveReport(ctx, rep); err != nil {
				logrus.WithField("event_id", event.ID).Errorf("Failed to archive report: %v", err)
			}
		}

		if s.notifier != nil {
			if err := s.notifier.SendReportSummary(rep); err != nil {
				logrus.WithField("event_id", event.ID).Errorf("Failed to send report summary: %v", err)
			}
		}

		s.markReported(event.ID)
		logrus.WithField("event_id", event.ID).Info("Sweep generated post-event report")
	}
}

func (s *Service) shouldReport(event models.Event, now time.Time, window time.Duration) bool {
	if !now.After(event.EndDate) || now.Sub(event.EndDate) > window {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.reported[event.ID]
}

func (s *Service) markReported(eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reported[eventID] = true
}
