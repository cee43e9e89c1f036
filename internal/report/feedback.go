package report

import (
	"math"
	"sort"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
)

const topK = 5

// AnalyzeFeedback aggregates all feedback for an event in a single pass:
// sentiment and source distributions, issue-type frequencies over negative
// feedback, bounded top-k positive/negative examples, and the derived
// average and net sentiment scores.
func AnalyzeFeedback(feedback []models.Feedback) models.FeedbackAnalysis {
	analysis := models.FeedbackAnalysis{
		Total:             len(feedback),
		SourceCounts:      make(map[string]int),
		SourcePercentages: make(map[string]float64),
		IssueCounts:       make(map[string]int),
	}

	topPositive := newTopPositive(topK)
	topNegative := newTopNegative(topK)

	var scoreSum float64
	for _, fb := range feedback {
		switch fb.Sentiment {
		case models.SentimentPositive:
			analysis.SentimentCounts.Positive++
			topPositive.Offer(fb)
		case models.SentimentNegative:
			analysis.SentimentCounts.Negative++
			topNegative.Offer(fb)
			if fb.IssueType != "" {
				analysis.IssueCounts[fb.IssueType]++
			}
		default:
			analysis.SentimentCounts.Neutral++
		}

		analysis.SourceCounts[fb.Source]++
		scoreSum += fb.SentimentScore
	}

	total := analysis.Total
	analysis.SentimentPercentages = models.SentimentPercentages{
		Positive: percentage(analysis.SentimentCounts.Positive, total),
		Neutral:  percentage(analysis.SentimentCounts.Neutral, total),
		Negative: percentage(analysis.SentimentCounts.Negative, total),
	}

	for source, count := range analysis.SourceCounts {
		analysis.SourcePercentages[source] = percentage(count, total)
	}

	analysis.TopIssues = rankCounts(analysis.IssueCounts, analysis.SentimentCounts.Negative, topK)
	analysis.TopPositiveFeedback = toExamples(topPositive.Sorted())
	analysis.TopNegativeFeedback = toExamples(topNegative.Sorted())

	if total > 0 {
		analysis.AverageSentimentScore = scoreSum / float64(total)
	}
	analysis.NetSentimentScore = round2((analysis.SentimentPercentages.Positive - analysis.SentimentPercentages.Negative) / 100)

	return analysis
}

func toExamples(feedback []models.Feedback) []models.FeedbackExample {
	examples := make([]models.FeedbackExample, 0, len(feedback))
	for _, fb := range feedback {
		examples = append(examples, models.FeedbackExample{
			Text:      fb.Text,
			Source:    fb.Source,
			Score:     fb.SentimentScore,
			CreatedAt: fb.CreatedAt,
		})
	}
	return examples
}

// percentage is count over total as a percent, 0 when the total is 0
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// rankCounts ranks a count map descending and keeps the top limit entries.
// Percentages are relative to the given reference total. Ties break by name
// so the ranking is deterministic.
func rankCounts(counts map[string]int, referenceTotal, limit int) []models.RankedCount {
	ranked := make([]models.RankedCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, models.RankedCount{
			Name:       name,
			Count:      count,
			Percentage: percentage(count, referenceTotal),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
