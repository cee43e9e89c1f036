package report

import (
	"fmt"
	"strings"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
)

// issueTemplate maps a reported issue type to an improvement action. Priority
// escalates to high when the issue's share of negative feedback exceeds
// HighThreshold, unless AlwaysHigh forces it.
type issueTemplate struct {
	Area          string
	Title         string
	Description   string
	HighThreshold float64 // percent of negative feedback
	AlwaysHigh    bool
}

// issueTemplates keys are issue-type tags as emitted by the classifier. New
// categories are added here, not in the rule code.
var issueTemplates = map[string]issueTemplate{
	"queue": {
		Area:          "Logistics",
		Title:         "Reduce Queue Times",
		Description:   "Attendees reported long waits. Add entry lanes, staff peak windows, and consider staggered entry times.",
		HighThreshold: 30,
	},
	"audio": {
		Area:          "Technical",
		Title:         "Improve Audio Quality",
		Description:   "Audio problems were a recurring complaint. Review speaker placement and run sound checks in every room before sessions.",
		HighThreshold: 30,
	},
	"video": {
		Area:          "Technical",
		Title:         "Improve Video and Projection",
		Description:   "Video and projection problems were reported. Verify display equipment and sightlines ahead of each session.",
		HighThreshold: 30,
	},
	"crowding": {
		Area:          "Venue",
		Title:         "Manage Crowd Density",
		Description:   "Crowding complaints suggest capacity pressure. Rebalance room assignments and open overflow areas earlier.",
		HighThreshold: 30,
	},
	"amenities": {
		Area:          "Services",
		Title:         "Upgrade Amenities",
		Description:   "Amenity complaints (restrooms, water, seating) came up repeatedly. Audit facilities and increase servicing frequency.",
		HighThreshold: 30,
	},
	"content": {
		Area:          "Programming",
		Title:         "Strengthen Content Lineup",
		Description:   "Session content fell short for some attendees. Revisit speaker selection and collect topic preferences beforehand.",
		HighThreshold: 30,
	},
	"temperature": {
		Area:          "Venue",
		Title:         "Fix Climate Control",
		Description:   "Temperature complaints were reported. Check HVAC coverage for the affected areas and monitor during sessions.",
		HighThreshold: 25,
	},
	"safety": {
		Area:        "Security",
		Title:       "Address Safety Concerns",
		Description: "Safety-related feedback always warrants immediate review. Audit incident reports and security coverage.",
		AlwaysHigh:  true,
	},
}

// genericIssueThreshold applies to issue types without a dedicated template
const genericIssueThreshold = 25

// positiveAreaKeywords maps reinforcement areas to the keywords that select
// them, checked in order against the top positive feedback text.
var positiveAreaKeywords = []struct {
	Area     string
	Keywords []string
}{
	{"content", []string{"speaker", "talk", "session", "presentation", "content"}},
	{"food and beverage", []string{"food", "drink", "catering", "beverage", "coffee"}},
	{"staff", []string{"staff", "volunteer", "team", "helpful"}},
	{"venue", []string{"venue", "location", "space", "facility"}},
}

// GenerateRecommendations maps the aggregated analysis onto prioritized
// improvement actions. Every matching rule contributes, in a fixed order; the
// list is never capped.
func GenerateRecommendations(ctx *analysisContext) []models.Recommendation {
	var recs []models.Recommendation

	if len(ctx.Feedback.TopIssues) > 0 {
		recs = append(recs, topIssueRecommendation(ctx.Feedback.TopIssues[0]))
	}

	if ctx.Alerts.ResolutionRate < 70 {
		recs = append(recs, models.Recommendation{
			Area:  "Operations",
			Title: "Improve Alert Resolution",
			Description: fmt.Sprintf("Only %.1f%% of alerts were resolved. Review the escalation process and make sure every alert has an owner.",
				ctx.Alerts.ResolutionRate),
			Priority: models.PriorityHigh,
		})
	}

	if ctx.Alerts.AverageResponseTimeMinutes > 30 && ctx.Alerts.Total > 5 {
		recs = append(recs, models.Recommendation{
			Area:  "Operations",
			Title: "Reduce Alert Response Time",
			Description: fmt.Sprintf("Alerts took %d minutes on average to resolve. Aim for under 30 minutes with clearer on-call routing.",
				ctx.Alerts.AverageResponseTimeMinutes),
			Priority: models.PriorityMedium,
		})
	}

	if ctx.Feedback.SentimentPercentages.Negative > 30 {
		recs = append(recs, models.Recommendation{
			Area:  "Customer Experience",
			Title: "Address Negative Sentiment",
			Description: fmt.Sprintf("%.1f%% of feedback was negative. Review the top reported issues and follow up with affected attendees.",
				ctx.Feedback.SentimentPercentages.Negative),
			Priority: models.PriorityHigh,
		})
	}

	if ctx.Feedback.Total > 0 && ctx.Trends.EventDayCount > 0 &&
		float64(ctx.Feedback.Total)/float64(ctx.Trends.EventDayCount) < 10 {
		recs = append(recs, models.Recommendation{
			Area:        "Feedback Collection",
			Title:       "Increase Feedback Volume",
			Description: "Feedback volume averaged under 10 items per event day. Promote feedback channels on-site and in the event app.",
			Priority:    models.PriorityMedium,
		})
	}

	if len(ctx.Feedback.SourceCounts) <= 2 {
		recs = append(recs, models.Recommendation{
			Area:        "Feedback Collection",
			Title:       "Diversify Feedback Channels",
			Description: "Feedback arrived through two channels or fewer. Enable additional collection channels to reduce sampling bias.",
			Priority:    models.PriorityMedium,
		})
	}

	if ctx.Feedback.SentimentPercentages.Positive > 60 {
		recs = append(recs, positiveReinforcement(ctx.Feedback))
	}

	return recs
}

func topIssueRecommendation(top models.RankedCount) models.Recommendation {
	tmpl, ok := issueTemplates[strings.ToLower(top.Name)]
	if !ok {
		tmpl = issueTemplate{
			Area:          "General",
			Title:         fmt.Sprintf("Address %s Issues", strings.Title(top.Name)),
			Description:   fmt.Sprintf("\"%s\" was the most reported issue type. Investigate the underlying cause before the next event.", top.Name),
			HighThreshold: genericIssueThreshold,
		}
	}

	priority := models.PriorityMedium
	if tmpl.AlwaysHigh || top.Percentage > tmpl.HighThreshold {
		priority = models.PriorityHigh
	}

	return models.Recommendation{
		Area:        tmpl.Area,
		Title:       tmpl.Title,
		Description: tmpl.Description,
		Priority:    priority,
	}
}

// positiveReinforcement emits exactly one "keep doing this" recommendation,
// inferring the strongest area from the top positive feedback text.
func positiveReinforcement(fb models.FeedbackAnalysis) models.Recommendation {
	var combined strings.Builder
	for _, example := range fb.TopPositiveFeedback {
		combined.WriteString(strings.ToLower(example.Text))
		combined.WriteString(" ")
	}
	text := combined.String()

	area := "overall experience"
	for _, bucket := range positiveAreaKeywords {
		matched := false
		for _, keyword := range bucket.Keywords {
			if strings.Contains(text, keyword) {
				matched = true
				break
			}
		}
		if matched {
			area = bucket.Area
			break
		}
	}

	return models.Recommendation{
		Area:  area,
		Title: "Keep Doing What Worked",
		Description: fmt.Sprintf("%.1f%% of feedback was positive, with the %s standing out. Preserve this in future event planning.",
			fb.SentimentPercentages.Positive, area),
		Priority: models.PriorityLow,
	}
}
