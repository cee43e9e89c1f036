package models

import "time"

// Feedback source channels
const (
	SourceDirect    = "direct"
	SourceTwitter   = "twitter"
	SourceInstagram = "instagram"
	SourceLinkedIn  = "linkedin"
	SourceManual    = "manual"
	SourceSurvey    = "survey"
	SourceAppChat   = "app_chat"
)

// SourceChannels lists every known feedback channel in presentation order.
// Code that needs deterministic iteration over per-source maps walks this
// slice instead of ranging over the map.
var SourceChannels = []string{
	SourceDirect,
	SourceTwitter,
	SourceInstagram,
	SourceLinkedIn,
	SourceManual,
	SourceSurvey,
	SourceAppChat,
}

// Sentiment classes
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Alert types
const (
	AlertTypeSOS       = "sos"
	AlertTypeSentiment = "sentiment"
	AlertTypeIssue     = "issue"
	AlertTypeTrend     = "trend"
	AlertTypeSystem    = "system"
)

// Severities (shared by alerts and issues)
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Alert statuses
const (
	AlertStatusNew          = "new"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusInProgress   = "inProgress"
	AlertStatusResolved     = "resolved"
	AlertStatusIgnored      = "ignored"
)

// Issue statuses
const (
	IssueStatusDetected      = "detected"
	IssueStatusConfirmed     = "confirmed"
	IssueStatusInProgress    = "inProgress"
	IssueStatusResolved      = "resolved"
	IssueStatusFalsePositive = "falsePositive"
)

// Sentiment bucket timeframes
const (
	TimeframeHour = "hour"
	TimeframeDay  = "day"
)

// Event represents a monitored event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
}

// Feedback is one piece of attendee feedback, already classified upstream
type Feedback struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	Source         string    `json:"source"`          // "direct", "twitter", "survey", etc.
	Text           string    `json:"text"`
	Sentiment      string    `json:"sentiment"`       // "positive", "neutral", "negative"
	SentimentScore float64   `json:"sentiment_score"` // continuous, in [-1, 1]
	IssueType      string    `json:"issue_type,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Alert represents an operational alert raised during the event
type Alert struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	Type       string     `json:"type"`
	Severity   string     `json:"severity"`
	Category   string     `json:"category"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// Issue represents a confirmed or suspected problem at the event
type Issue struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	Type       string     `json:"type"`
	Severity   string     `json:"severity"`
	Status     string     `json:"status"`
	Location   string     `json:"location,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// SentimentRecord is one pre-bucketed sentiment sample (hourly or daily)
type SentimentRecord struct {
	EventID   string    `json:"event_id"`
	Timeframe string    `json:"timeframe"` // "hour" or "day"
	Timestamp time.Time `json:"timestamp"`
	Positive  int       `json:"positive"`
	Neutral   int       `json:"neutral"`
	Negative  int       `json:"negative"`
	Total     int       `json:"total"`
}
