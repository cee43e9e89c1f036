package report

import "github.com/Aniket-Subudh1/EventSentix/internal/models"

// AnalyzeIssues aggregates all issues for an event. False positives count as
// resolved outcomes for the resolution rate, but resolution time averages only
// cover genuinely resolved issues.
func AnalyzeIssues(issues []models.Issue) models.IssueAnalysis {
	analysis := models.IssueAnalysis{
		Total:          len(issues),
		TypeCounts:     make(map[string]int),
		SeverityCounts: make(map[string]int),
		StatusCounts:   make(map[string]int),
		LocationCounts: make(map[string]int),
	}

	var (
		totalResolutionMs int64
		resolutionCount   int
	)

	for _, issue := range issues {
		analysis.TypeCounts[issue.Type]++
		analysis.SeverityCounts[issue.Severity]++
		analysis.StatusCounts[issue.Status]++
		if issue.Location != "" {
			analysis.LocationCounts[issue.Location]++
		}

		if issue.Status == models.IssueStatusResolved && issue.ResolvedAt != nil {
			totalResolutionMs += issue.ResolvedAt.Sub(issue.CreatedAt).Milliseconds()
			resolutionCount++
		}
	}

	resolved := analysis.StatusCounts[models.IssueStatusResolved]
	falsePositives := analysis.StatusCounts[models.IssueStatusFalsePositive]

	analysis.ResolutionRate = percentage(resolved+falsePositives, analysis.Total)
	analysis.UnresolvedCount = analysis.Total - resolved - falsePositives

	if resolutionCount > 0 {
		analysis.AverageResolutionTimeMinutes = int(totalResolutionMs / int64(resolutionCount) / 60000)
	}

	analysis.TopIssueTypes = rankCounts(analysis.TypeCounts, analysis.Total, topK)
	analysis.TopLocations = rankCounts(analysis.LocationCounts, analysis.Total, topK)

	return analysis
}
