package report

import (
	"sort"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
)

// AnalyzeAlerts aggregates all alerts for an event: counts by type, severity,
// category and status, resolution rate, response-time averages, and a per-day
// timeline sorted chronologically.
func AnalyzeAlerts(alerts []models.Alert) models.AlertAnalysis {
	analysis := models.AlertAnalysis{
		Total:          len(alerts),
		TypeCounts:     make(map[string]int),
		SeverityCounts: make(map[string]int),
		CategoryCounts: make(map[string]int),
		StatusCounts:   make(map[string]int),
	}

	var (
		totalResponseMs    int64
		totalResponseCount int
		criticalResponseMs int64
		criticalCount      int
	)
	days := make(map[string]*models.AlertTimelineEntry)

	for _, alert := range alerts {
		analysis.TypeCounts[alert.Type]++
		analysis.SeverityCounts[alert.Severity]++
		analysis.CategoryCounts[alert.Category]++
		analysis.StatusCounts[alert.Status]++

		if alert.Status == models.AlertStatusResolved && alert.ResolvedAt != nil {
			responseMs := alert.ResolvedAt.Sub(alert.CreatedAt).Milliseconds()
			totalResponseMs += responseMs
			totalResponseCount++
			if alert.Severity == models.SeverityCritical {
				criticalResponseMs += responseMs
				criticalCount++
			}
		}

		day := alert.CreatedAt.UTC().Format("2006-01-02")
		entry, ok := days[day]
		if !ok {
			entry = &models.AlertTimelineEntry{
				Date:           day,
				TypeCounts:     make(map[string]int),
				SeverityCounts: make(map[string]int),
			}
			days[day] = entry
		}
		entry.Count++
		entry.TypeCounts[alert.Type]++
		entry.SeverityCounts[alert.Severity]++
		if alert.Status == models.AlertStatusResolved {
			entry.Resolved++
		}
	}

	analysis.ResolutionRate = percentage(analysis.StatusCounts[models.AlertStatusResolved], analysis.Total)

	if totalResponseCount > 0 {
		analysis.AverageResponseTimeMinutes = int(totalResponseMs / int64(totalResponseCount) / 60000)
	}
	if criticalCount > 0 {
		analysis.CriticalResponseTimeMinutes = int(criticalResponseMs / int64(criticalCount) / 60000)
	}

	analysis.TopCategories = rankCounts(analysis.CategoryCounts, analysis.Total, topK)

	analysis.Timeline = make([]models.AlertTimelineEntry, 0, len(days))
	for _, entry := range days {
		analysis.Timeline = append(analysis.Timeline, *entry)
	}
	sort.Slice(analysis.Timeline, func(i, j int) bool {
		return analysis.Timeline[i].Date < analysis.Timeline[j].Date
	})

	return analysis
}
