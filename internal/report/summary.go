package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
)

// Composite score weights: sentiment carries the most, alert and issue
// handling split the remainder evenly.
const (
	sentimentWeight = 0.4
	issueWeight     = 0.3
	alertWeight     = 0.3
)

// BuildExecutiveSummary blends the aggregator outputs into the 0-100 success
// score, its categorical level, and the headline metrics.
func BuildExecutiveSummary(fb models.FeedbackAnalysis, alerts models.AlertAnalysis, issues models.IssueAnalysis) models.ExecutiveSummary {
	sentimentScore := clamp(50+fb.NetSentimentScore*50, 0, 100)
	issueScore := clamp(issues.ResolutionRate, 0, 100)
	alertScore := clamp(alerts.ResolutionRate, 0, 100)

	overall := int(math.Round(sentimentScore*sentimentWeight + issueScore*issueWeight + alertScore*alertWeight))

	summary := models.ExecutiveSummary{
		OverallScore:      overall,
		SuccessLevel:      successLevel(overall),
		FeedbackTotal:     fb.Total,
		NetSentimentScore: fb.NetSentimentScore,
		SentimentRatio: fmt.Sprintf("%d/%d",
			int(math.Round(fb.SentimentPercentages.Positive)),
			int(math.Round(fb.SentimentPercentages.Negative))),
		PrimarySource:              primarySource(fb.SourceCounts),
		AlertsTotal:                alerts.Total,
		AlertResolutionRate:        alerts.ResolutionRate,
		AverageResponseTimeMinutes: alerts.AverageResponseTimeMinutes,
		IssuesTotal:                issues.Total,
		IssueResolutionRate:        issues.ResolutionRate,
		UnresolvedIssues:           issues.UnresolvedCount,
	}

	if len(fb.TopIssues) > 0 {
		summary.TopIssueType = fb.TopIssues[0].Name
	}

	return summary
}

// successLevel maps the overall score to its tier, evaluated highest first
// with inclusive lower bounds.
func successLevel(score int) string {
	switch {
	case score >= 90:
		return models.SuccessExceptional
	case score >= 75:
		return models.SuccessSuccessful
	case score >= 60:
		return models.SuccessSatisfactory
	case score >= 40:
		return models.SuccessMixed
	case score >= 25:
		return models.SuccessChallenging
	default:
		return models.SuccessProblematic
	}
}

// primarySource is the channel with the highest raw feedback count. Iteration
// follows the fixed channel order (then any unknown channels by name) so ties
// resolve to the first channel encountered, deterministically.
func primarySource(sourceCounts map[string]int) string {
	known := make(map[string]bool, len(models.SourceChannels))
	order := make([]string, 0, len(sourceCounts))
	for _, channel := range models.SourceChannels {
		known[channel] = true
		if _, ok := sourceCounts[channel]; ok {
			order = append(order, channel)
		}
	}

	var extras []string
	for source := range sourceCounts {
		if !known[source] {
			extras = append(extras, source)
		}
	}
	sort.Strings(extras)
	order = append(order, extras...)

	var (
		primary string
		best    int
	)
	for _, source := range order {
		if sourceCounts[source] > best {
			primary = source
			best = sourceCounts[source]
		}
	}
	return primary
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
