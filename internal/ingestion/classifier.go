package ingestion

import (
	"strings"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
)

var positiveWords = []string{
	"good", "great", "excellent", "love", "awesome", "fantastic", "amazing",
	"helpful", "enjoyed", "wonderful", "best", "perfect", "smooth",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "hate", "broken", "disappointing", "worst",
	"problem", "issue", "crowded", "slow", "rude", "dirty", "cold", "hot",
}

// issueKeywords maps issue-type tags to the words that indicate them, checked
// in order so the first match wins.
var issueKeywords = []struct {
	Type     string
	Keywords []string
}{
	{"queue", []string{"queue", "line", "wait", "waiting"}},
	{"audio", []string{"audio", "sound", "microphone", "speaker system"}},
	{"video", []string{"video", "screen", "projector", "display"}},
	{"crowding", []string{"crowded", "crowd", "packed", "overcrowded"}},
	{"temperature", []string{"temperature", "cold", "hot", "freezing", "heat"}},
	{"amenities", []string{"restroom", "toilet", "water", "seating", "wifi"}},
	{"safety", []string{"unsafe", "danger", "security", "emergency", "hurt"}},
	{"content", []string{"boring", "talk", "session", "presentation"}},
}

// Classify assigns a sentiment class and a score in [-1, 1] from keyword
// counts. Used for feedback that arrives without an upstream classification.
func Classify(text string) (string, float64) {
	lower := strings.ToLower(text)

	positive := 0
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}

	negative := 0
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	if positive == 0 && negative == 0 {
		return models.SentimentNeutral, 0
	}

	score := float64(positive-negative) / float64(positive+negative)
	switch {
	case positive > negative:
		return models.SentimentPositive, score
	case negative > positive:
		return models.SentimentNegative, score
	default:
		return models.SentimentNeutral, 0
	}
}

// DetectIssueType tags negative feedback with an issue category, or returns
// "" when no category matches.
func DetectIssueType(text string) string {
	lower := strings.ToLower(text)
	for _, bucket := range issueKeywords {
		for _, keyword := range bucket.Keywords {
			if strings.Contains(lower, keyword) {
				return bucket.Type
			}
		}
	}
	return ""
}
