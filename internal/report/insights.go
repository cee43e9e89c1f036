package report

import (
	"fmt"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
)

// analysisContext bundles the aggregator outputs the insight and
// recommendation rules read from.
type analysisContext struct {
	Event    *models.Event
	Feedback models.FeedbackAnalysis
	Alerts   models.AlertAnalysis
	Issues   models.IssueAnalysis
	Trends   models.SentimentTrends
}

// insightRule inspects the analysis context and returns one insight, or nil
// when the rule does not apply.
type insightRule func(*analysisContext) *models.Insight

// insightRules run in this order; the order is part of the report contract.
var insightRules = []insightRule{
	eventScaleInsight,
	sentimentReceptionInsight,
	topIssueInsight,
	alertManagementInsight,
	criticalIssueInsight,
	engagementPatternInsight,
	sentimentShiftInsight,
	dominantChannelInsight,
}

// GenerateInsights evaluates every insight rule in order and collects the
// matches.
func GenerateInsights(ctx *analysisContext) []models.Insight {
	var insights []models.Insight
	for _, rule := range insightRules {
		if insight := rule(ctx); insight != nil {
			insights = append(insights, *insight)
		}
	}
	return insights
}

func eventScaleInsight(ctx *analysisContext) *models.Insight {
	return &models.Insight{
		Type:  models.InsightInfo,
		Title: "Event Scale",
		Content: fmt.Sprintf("Collected %d pieces of feedback across %d channel(s) over %d day(s).",
			ctx.Feedback.Total, len(ctx.Feedback.SourceCounts), ctx.Trends.EventDayCount),
	}
}

func sentimentReceptionInsight(ctx *analysisContext) *models.Insight {
	pct := ctx.Feedback.SentimentPercentages
	switch {
	case pct.Positive > 75:
		return &models.Insight{
			Type:    models.InsightPositive,
			Title:   "Overwhelmingly Positive Reception",
			Content: fmt.Sprintf("%.1f%% of all feedback was positive, an exceptional result.", pct.Positive),
		}
	case pct.Positive > 60:
		return &models.Insight{
			Type:    models.InsightPositive,
			Title:   "Positive Reception",
			Content: fmt.Sprintf("%.1f%% of all feedback was positive.", pct.Positive),
		}
	case pct.Negative > 50:
		return &models.Insight{
			Type:    models.InsightNegative,
			Title:   "Negative Reception",
			Content: fmt.Sprintf("%.1f%% of all feedback was negative, indicating widespread dissatisfaction.", pct.Negative),
		}
	default:
		return &models.Insight{
			Type:    models.InsightNeutral,
			Title:   "Mixed Reception",
			Content: fmt.Sprintf("Feedback was mixed: %.1f%% positive, %.1f%% negative.", pct.Positive, pct.Negative),
		}
	}
}

func topIssueInsight(ctx *analysisContext) *models.Insight {
	if len(ctx.Feedback.TopIssues) == 0 {
		return nil
	}
	top := ctx.Feedback.TopIssues[0]
	return &models.Insight{
		Type:  models.InsightWarning,
		Title: "Most Reported Issue",
		Content: fmt.Sprintf("\"%s\" was the most reported issue with %d mention(s), %.1f%% of negative feedback.",
			top.Name, top.Count, top.Percentage),
	}
}

func alertManagementInsight(ctx *analysisContext) *models.Insight {
	if ctx.Alerts.Total == 0 {
		return nil
	}
	switch {
	case ctx.Alerts.ResolutionRate > 90:
		return &models.Insight{
			Type:  models.InsightPositive,
			Title: "Excellent Alert Management",
			Content: fmt.Sprintf("%.1f%% of %d alert(s) were resolved.",
				ctx.Alerts.ResolutionRate, ctx.Alerts.Total),
		}
	case ctx.Alerts.ResolutionRate < 50:
		return &models.Insight{
			Type:  models.InsightNegative,
			Title: "Poor Alert Resolution",
			Content: fmt.Sprintf("Only %.1f%% of %d alert(s) were resolved.",
				ctx.Alerts.ResolutionRate, ctx.Alerts.Total),
		}
	default:
		return nil
	}
}

func criticalIssueInsight(ctx *analysisContext) *models.Insight {
	critical := ctx.Issues.SeverityCounts[models.SeverityCritical]
	if critical == 0 {
		return nil
	}
	return &models.Insight{
		Type:    models.InsightWarning,
		Title:   "Critical Issues Detected",
		Content: fmt.Sprintf("%d critical issue(s) were recorded during the event.", critical),
	}
}

func engagementPatternInsight(ctx *analysisContext) *models.Insight {
	volumes := ctx.Trends.DailyVolume
	if len(volumes) <= 1 {
		return nil
	}

	maxIdx := 0
	for i := 1; i < len(volumes); i++ {
		if volumes[i].Total > volumes[maxIdx].Total {
			maxIdx = i
		}
	}

	var pattern string
	switch maxIdx {
	case 0:
		pattern = "front-loaded: engagement peaked on the first day"
	case len(volumes) - 1:
		pattern = "back-loaded: engagement peaked on the final day"
	default:
		pattern = fmt.Sprintf("mid-peak: engagement peaked on day %d", maxIdx+1)
	}

	return &models.Insight{
		Type:    models.InsightInfo,
		Title:   "Engagement Pattern",
		Content: fmt.Sprintf("Feedback volume was %s (%s, %d item(s)).", pattern, volumes[maxIdx].Date, volumes[maxIdx].Total),
	}
}

func sentimentShiftInsight(ctx *analysisContext) *models.Insight {
	if len(ctx.Trends.SentimentChanges) == 0 {
		return nil
	}

	change := ctx.Trends.SentimentChanges[0]
	if change.Direction == "negative" {
		return &models.Insight{
			Type:  models.InsightNegative,
			Title: "Sentiment Shift",
			Content: fmt.Sprintf("Negative sentiment rose by %.0f points between %s and %s.",
				change.Delta, change.From.Format("Jan 2 15:04"), change.To.Format("Jan 2 15:04")),
		}
	}
	return &models.Insight{
		Type:  models.InsightPositive,
		Title: "Sentiment Shift",
		Content: fmt.Sprintf("Negative sentiment fell by %.0f points between %s and %s.",
			-change.Delta, change.From.Format("Jan 2 15:04"), change.To.Format("Jan 2 15:04")),
	}
}

func dominantChannelInsight(ctx *analysisContext) *models.Insight {
	if len(ctx.Feedback.SourceCounts) <= 1 {
		return nil
	}
	source := primarySource(ctx.Feedback.SourceCounts)
	return &models.Insight{
		Type:  models.InsightInfo,
		Title: "Dominant Feedback Channel",
		Content: fmt.Sprintf("Most feedback arrived via %s (%.1f%% of the total).",
			source, ctx.Feedback.SourcePercentages[source]),
	}
}
