package report

import (
	"testing"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
	"github.com/stretchr/testify/assert"
)

func resolvedAlert(created time.Time, responseMinutes int, severity string) models.Alert {
	resolved := created.Add(time.Duration(responseMinutes) * time.Minute)
	return models.Alert{
		Type:       models.AlertTypeIssue,
		Severity:   severity,
		Category:   "operations",
		Status:     models.AlertStatusResolved,
		CreatedAt:  created,
		ResolvedAt: &resolved,
	}
}

func TestAnalyzeAlerts_AverageResponseTime(t *testing.T) {
	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	alerts := []models.Alert{
		resolvedAlert(base, 10, models.SeverityLow),
		resolvedAlert(base, 20, models.SeverityMedium),
		resolvedAlert(base, 30, models.SeverityCritical),
		resolvedAlert(base, 40, models.SeverityHigh),
		resolvedAlert(base, 50, models.SeverityLow),
	}

	analysis := AnalyzeAlerts(alerts)

	// Mean of 10..50 minutes is 1,800,000 ms, floored to 30 whole minutes
	assert.Equal(t, 30, analysis.AverageResponseTimeMinutes)
	assert.Equal(t, 30, analysis.CriticalResponseTimeMinutes)
	assert.InDelta(t, 100, analysis.ResolutionRate, 1e-9)
}

func TestAnalyzeAlerts_ResolutionRateIgnoresUnresolved(t *testing.T) {
	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	alerts := []models.Alert{
		resolvedAlert(base, 5, models.SeverityLow),
		{Type: models.AlertTypeSOS, Severity: models.SeverityCritical, Category: "safety", Status: models.AlertStatusNew, CreatedAt: base},
		{Type: models.AlertTypeTrend, Severity: models.SeverityLow, Category: "sentiment", Status: models.AlertStatusIgnored, CreatedAt: base},
		{Type: models.AlertTypeSentiment, Severity: models.SeverityMedium, Category: "sentiment", Status: models.AlertStatusAcknowledged, CreatedAt: base},
	}

	analysis := AnalyzeAlerts(alerts)

	assert.Equal(t, 4, analysis.Total)
	assert.InDelta(t, 25, analysis.ResolutionRate, 1e-9)
	// Unresolved criticals contribute no response time
	assert.Equal(t, 0, analysis.CriticalResponseTimeMinutes)
}

func TestAnalyzeAlerts_TimelineChronological(t *testing.T) {
	day2 := time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC)
	day1 := time.Date(2025, 6, 10, 22, 0, 0, 0, time.UTC)

	alerts := []models.Alert{
		// Deliberately out of order
		{Type: models.AlertTypeIssue, Severity: models.SeverityLow, Category: "ops", Status: models.AlertStatusNew, CreatedAt: day2},
		resolvedAlert(day1, 15, models.SeverityHigh),
		{Type: models.AlertTypeSystem, Severity: models.SeverityLow, Category: "ops", Status: models.AlertStatusNew, CreatedAt: day2},
	}

	analysis := AnalyzeAlerts(alerts)

	assert.Len(t, analysis.Timeline, 2)
	assert.Equal(t, "2025-06-10", analysis.Timeline[0].Date)
	assert.Equal(t, "2025-06-11", analysis.Timeline[1].Date)
	assert.Equal(t, 1, analysis.Timeline[0].Count)
	assert.Equal(t, 1, analysis.Timeline[0].Resolved)
	assert.Equal(t, 2, analysis.Timeline[1].Count)
	assert.Equal(t, 0, analysis.Timeline[1].Resolved)
	assert.Equal(t, map[string]int{models.AlertTypeIssue: 1, models.AlertTypeSystem: 1}, analysis.Timeline[1].TypeCounts)
}

func TestAnalyzeAlerts_TopCategories(t *testing.T) {
	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	var alerts []models.Alert
	categories := []string{"ops", "ops", "ops", "safety", "safety", "weather"}
	for _, category := range categories {
		alerts = append(alerts, models.Alert{
			Type:      models.AlertTypeIssue,
			Severity:  models.SeverityLow,
			Category:  category,
			Status:    models.AlertStatusNew,
			CreatedAt: base,
		})
	}

	analysis := AnalyzeAlerts(alerts)

	assert.Equal(t, "ops", analysis.TopCategories[0].Name)
	assert.Equal(t, 3, analysis.TopCategories[0].Count)
	assert.InDelta(t, 50, analysis.TopCategories[0].Percentage, 1e-9)
}

func TestAnalyzeAlerts_Empty(t *testing.T) {
	analysis := AnalyzeAlerts(nil)

	assert.Equal(t, 0, analysis.Total)
	assert.Zero(t, analysis.ResolutionRate)
	assert.Zero(t, analysis.AverageResponseTimeMinutes)
	assert.Empty(t, analysis.Timeline)
	assert.Empty(t, analysis.TopCategories)
}
