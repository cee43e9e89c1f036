package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
	"github.com/Aniket-Subudh1/EventSentix/internal/store"
	"github.com/sirupsen/logrus"
)

// availabilityWindow is how close to the event end a report may be generated
// without Force.
const availabilityWindow = 24 * time.Hour

// Options controls a single report generation
type Options struct {
	// Force bypasses the availability gate
	Force bool
}

// Service generates post-event analytics reports. It holds no per-event state
// between calls; concurrent generations, including for the same event, are
// safe.
type Service struct {
	store store.Store
	now   func() time.Time
}

// NewService creates a report service backed by the given store
func NewService(st store.Store) *Service {
	return &Service{
		store: st,
		now:   time.Now,
	}
}

// GenerateReport builds the full analytics report for an event. It fails with
// store.ErrEventNotFound when the event does not exist and with
// *NotYetAvailableError when the event has not ended, is not within 24 hours
// of ending, and Force is not set. The four source aggregations run
// concurrently; any read failure aborts the whole generation.
func (s *Service) GenerateReport(ctx context.Context, eventID string, opts Options) (*models.Report, error) {
	event, err := s.store.FindEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("finding event %s: %w", eventID, err)
	}

	now := s.now()
	if err := checkAvailability(event, now, opts.Force); err != nil {
		return nil, err
	}

	logrus.WithField("event_id", eventID).Info("Generating post-event report")

	var (
		feedbackAnalysis models.FeedbackAnalysis
		alertAnalysis    models.AlertAnalysis
		issueAnalysis    models.IssueAnalysis
		sentimentTrends  models.SentimentTrends
	)

	var wg sync.WaitGroup
	errs := make(chan error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		feedback, err := s.store.ListFeedback(ctx, eventID)
		if err != nil {
			errs <- fmt.Errorf("reading feedback for event %s: %w", eventID, err)
			return
		}
		feedbackAnalysis = AnalyzeFeedback(feedback)
	}()
	go func() {
		defer wg.Done()
		alerts, err := s.store.ListAlerts(ctx, eventID)
		if err != nil {
			errs <- fmt.Errorf("reading alerts for event %s: %w", eventID, err)
			return
		}
		alertAnalysis = AnalyzeAlerts(alerts)
	}()
	go func() {
		defer wg.Done()
		issues, err := s.store.ListIssues(ctx, eventID)
		if err != nil {
			errs <- fmt.Errorf("reading issues for event %s: %w", eventID, err)
			return
		}
		issueAnalysis = AnalyzeIssues(issues)
	}()
	go func() {
		defer wg.Done()
		hourly, err := s.store.ListSentimentRecords(ctx, eventID, models.TimeframeHour)
		if err != nil {
			errs <- fmt.Errorf("reading hourly sentiment for event %s: %w", eventID, err)
			return
		}
		daily, err := s.store.ListSentimentRecords(ctx, eventID, models.TimeframeDay)
		if err != nil {
			errs <- fmt.Errorf("reading daily sentiment for event %s: %w", eventID, err)
			return
		}
		sentimentTrends = AnalyzeSentimentTrends(event, hourly, daily)
	}()

	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		logrus.WithField("event_id", eventID).Errorf("Report generation failed: %v", err)
		return nil, err
	}

	analysis := &analysisContext{
		Event:    event,
		Feedback: feedbackAnalysis,
		Alerts:   alertAnalysis,
		Issues:   issueAnalysis,
		Trends:   sentimentTrends,
	}

	eventStatus := models.EventStatusActive
	if now.After(event.EndDate) {
		eventStatus = models.EventStatusCompleted
	}

	report := &models.Report{
		Event: models.EventSummary{
			ID:          event.ID,
			Name:        event.Name,
			Description: event.Description,
			StartDate:   event.StartDate,
			EndDate:     event.EndDate,
			Location:    event.Location,
		},
		ReportGeneratedAt: now,
		EventStatus:       eventStatus,
		ExecutiveSummary:  BuildExecutiveSummary(feedbackAnalysis, alertAnalysis, issueAnalysis),
		FeedbackAnalysis:  feedbackAnalysis,
		AlertAnalysis:     alertAnalysis,
		IssueAnalysis:     issueAnalysis,
		SentimentTrends:   sentimentTrends,
		Insights:          GenerateInsights(analysis),
		Recommendations:   GenerateRecommendations(analysis),
	}

	logrus.WithField("event_id", eventID).Infof("Report generated: score %d (%s)",
		report.ExecutiveSummary.OverallScore, report.ExecutiveSummary.SuccessLevel)

	return report, nil
}

// checkAvailability allows generation once the event has ended, when the end
// date is within the availability window, or when forced.
func checkAvailability(event *models.Event, now time.Time, force bool) error {
	if force {
		return nil
	}
	if now.After(event.EndDate) {
		return nil
	}
	if event.EndDate.Sub(now) < availabilityWindow {
		return nil
	}
	return &NotYetAvailableError{
		EventID: event.ID,
		Message: fmt.Sprintf("event ends at %s; reports become available within %s of the end date, or pass force=true",
			event.EndDate.Format(time.RFC3339), availabilityWindow),
	}
}
