package models

import "time"

// Report statuses
const (
	EventStatusCompleted = "completed"
	EventStatusActive    = "active"
)

// Success levels, highest tier first
const (
	SuccessExceptional  = "exceptional"
	SuccessSuccessful   = "successful"
	SuccessSatisfactory = "satisfactory"
	SuccessMixed        = "mixed"
	SuccessChallenging  = "challenging"
	SuccessProblematic  = "problematic"
)

// Insight types
const (
	InsightPositive = "positive"
	InsightNegative = "negative"
	InsightWarning  = "warning"
	InsightInfo     = "info"
	InsightNeutral  = "neutral"
)

// Recommendation priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Report is the full post-event analytics report. It is derived entirely from
// the event's stored records: generating it twice on unchanged data yields the
// same report except for ReportGeneratedAt.
type Report struct {
	Event             EventSummary     `json:"event"`
	ReportGeneratedAt time.Time        `json:"report_generated_at"`
	EventStatus       string           `json:"event_status"` // "completed" or "active"
	ExecutiveSummary  ExecutiveSummary `json:"executive_summary"`
	FeedbackAnalysis  FeedbackAnalysis `json:"feedback_analysis"`
	AlertAnalysis     AlertAnalysis    `json:"alert_analysis"`
	IssueAnalysis     IssueAnalysis    `json:"issue_analysis"`
	SentimentTrends   SentimentTrends  `json:"sentiment_trends"`
	Insights          []Insight        `json:"insights"`
	Recommendations   []Recommendation `json:"recommendations"`
}

// EventSummary is the event metadata echoed into the report
type EventSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
}

// ExecutiveSummary carries the composite success score and headline metrics
type ExecutiveSummary struct {
	OverallScore               int     `json:"overall_score"` // 0-100
	SuccessLevel               string  `json:"success_level"`
	FeedbackTotal              int     `json:"feedback_total"`
	TopIssueType               string  `json:"top_issue_type,omitempty"`
	SentimentRatio             string  `json:"sentiment_ratio"` // "pos/neg", rounded percentages
	NetSentimentScore          float64 `json:"net_sentiment_score"`
	PrimarySource              string  `json:"primary_source,omitempty"`
	AlertsTotal                int     `json:"alerts_total"`
	AlertResolutionRate        float64 `json:"alert_resolution_rate"`
	AverageResponseTimeMinutes int     `json:"average_response_time_minutes"`
	IssuesTotal                int     `json:"issues_total"`
	IssueResolutionRate        float64 `json:"issue_resolution_rate"`
	UnresolvedIssues           int     `json:"unresolved_issues"`
}

// SentimentCounts holds per-class raw counts
type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// SentimentPercentages holds per-class shares of a total. All three are 0 when
// the underlying total is 0; otherwise they sum to 100.
type SentimentPercentages struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// FeedbackExample is one of the top-k positive or negative feedback samples
type FeedbackExample struct {
	Text      string    `json:"text"`
	Source    string    `json:"source"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// RankedCount is a name with its raw count and share of the reference total
type RankedCount struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// FeedbackAnalysis is the feedback aggregator output
type FeedbackAnalysis struct {
	Total                 int                  `json:"total"`
	SentimentCounts       SentimentCounts      `json:"sentiment_counts"`
	SentimentPercentages  SentimentPercentages `json:"sentiment_percentages"`
	SourceCounts          map[string]int       `json:"source_counts"`
	SourcePercentages     map[string]float64   `json:"source_percentages"`
	IssueCounts           map[string]int       `json:"issue_counts"` // negative feedback only
	TopIssues             []RankedCount        `json:"top_issues"`   // <=5, issue share of negative count
	TopPositiveFeedback   []FeedbackExample    `json:"top_positive_feedback"` // <=5, score desc
	TopNegativeFeedback   []FeedbackExample    `json:"top_negative_feedback"` // <=5, score asc
	AverageSentimentScore float64              `json:"average_sentiment_score"`
	NetSentimentScore     float64              `json:"net_sentiment_score"` // (posPct-negPct)/100, 2 decimals
}

// AlertTimelineEntry is one calendar day of alert activity
type AlertTimelineEntry struct {
	Date           string         `json:"date"` // "2006-01-02", UTC
	Count          int            `json:"count"`
	Resolved       int            `json:"resolved"`
	TypeCounts     map[string]int `json:"type_counts"`
	SeverityCounts map[string]int `json:"severity_counts"`
}

// AlertAnalysis is the alert aggregator output
type AlertAnalysis struct {
	Total                       int                  `json:"total"`
	TypeCounts                  map[string]int       `json:"type_counts"`
	SeverityCounts              map[string]int       `json:"severity_counts"`
	CategoryCounts              map[string]int       `json:"category_counts"`
	StatusCounts                map[string]int       `json:"status_counts"`
	ResolutionRate              float64              `json:"resolution_rate"` // percent
	AverageResponseTimeMinutes  int                  `json:"average_response_time_minutes"`
	CriticalResponseTimeMinutes int                  `json:"critical_response_time_minutes"`
	TopCategories               []RankedCount        `json:"top_categories"` // <=5
	Timeline                    []AlertTimelineEntry `json:"timeline"`       // chronological
}

// IssueAnalysis is the issue aggregator output. Resolution rate counts both
// resolved and falsePositive as resolved outcomes.
type IssueAnalysis struct {
	Total                        int            `json:"total"`
	TypeCounts                   map[string]int `json:"type_counts"`
	SeverityCounts               map[string]int `json:"severity_counts"`
	StatusCounts                 map[string]int `json:"status_counts"`
	LocationCounts               map[string]int `json:"location_counts"`
	ResolutionRate               float64        `json:"resolution_rate"` // percent
	AverageResolutionTimeMinutes int            `json:"average_resolution_time_minutes"`
	UnresolvedCount              int            `json:"unresolved_count"`
	TopIssueTypes                []RankedCount  `json:"top_issue_types"` // <=5
	TopLocations                 []RankedCount  `json:"top_locations"`   // <=5
}

// TrendPoint is one reshaped sentiment bucket
type TrendPoint struct {
	Timestamp    time.Time            `json:"timestamp"`
	Positive     int                  `json:"positive"`
	Neutral      int                  `json:"neutral"`
	Negative     int                  `json:"negative"`
	Total        int                  `json:"total"`
	SentimentPct SentimentPercentages `json:"sentiment_pct"`
}

// DailyVolume is one calendar day's feedback volume. Days inside the event
// span with no data appear zero-filled rather than being omitted.
type DailyVolume struct {
	Date     string `json:"date"` // "2006-01-02", UTC
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
	Total    int    `json:"total"`
}

// PeakPeriod identifies the bucket that maximized a volume or sentiment ratio
type PeakPeriod struct {
	Timestamp time.Time `json:"timestamp"`
	Positive  int       `json:"positive"`
	Neutral   int       `json:"neutral"`
	Negative  int       `json:"negative"`
	Total     int       `json:"total"`
	Ratio     float64   `json:"ratio"` // the maximized sentiment ratio, 0 for volume peaks
}

// SentimentChange is a shift of >=15 percentage points in negative share
// between two consecutive significant periods
type SentimentChange struct {
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Delta     float64   `json:"delta"`     // percentage points, signed
	Direction string    `json:"direction"` // "negative" (worsening) or "positive"
}

// SentimentTrends is the sentiment trend analyzer output
type SentimentTrends struct {
	Hourly             []TrendPoint      `json:"hourly"`
	Daily              []TrendPoint      `json:"daily"`
	DailyVolume        []DailyVolume     `json:"daily_volume"`
	PeakVolumePeriod   *PeakPeriod       `json:"peak_volume_period,omitempty"`
	PeakNegativePeriod *PeakPeriod       `json:"peak_negative_period,omitempty"`
	PeakPositivePeriod *PeakPeriod       `json:"peak_positive_period,omitempty"`
	SentimentChanges   []SentimentChange `json:"sentiment_changes"` // first 5 encountered, see analyzer docs
	EventDayCount      int               `json:"event_day_count"`
}

// Insight is one narrative observation derived from the aggregations
type Insight struct {
	Type    string `json:"type"` // "positive", "negative", "warning", "info", "neutral"
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Recommendation is one prioritized improvement action
type Recommendation struct {
	Area        string `json:"area"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // "high", "medium", "low"
}
