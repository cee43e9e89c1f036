package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/config"
	"github.com/Aniket-Subudh1/EventSentix/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Service delivers report summaries via webhook and/or email
type Service struct {
	config *config.Config
	client *resty.Client
}

// Ensure Service implements Notifier
var _ Notifier = (*Service)(nil)

// webhookMessage is the JSON payload posted to the configured webhook
type webhookMessage struct {
	Title    string        `json:"title"`
	Text     string        `json:"text"`
	Score    int           `json:"score"`
	Level    string        `json:"level"`
	Sections []webhookFact `json:"sections,omitempty"`
}

type webhookFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewService creates a new notification service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: resty.New().SetTimeout(30 * time.Second),
	}
}

// SendReportSummary sends the report digest via every configured channel
func (s *Service) SendReportSummary(report *models.Report) error {
	var errs []string

	if s.config.WebhookURL != "" {
		if err := s.sendToWebhook(report); err != nil {
			logrus.Errorf("Failed to send webhook notification: %v", err)
			errs = append(errs, fmt.Sprintf("webhook: %v", err))
		} else {
			logrus.Info("Successfully sent report summary to webhook")
		}
	}

	if s.config.NotificationEmail != "" {
		if err := s.sendEmail(report); err != nil {
			logrus.Errorf("Failed to send email notification: %v", err)
			errs = append(errs, fmt.Sprintf("email: %v", err))
		} else {
			logrus.Info("Successfully sent report summary via email")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("notification errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

func (s *Service) sendToWebhook(report *models.Report) error {
	message := s.buildWebhookMessage(report)

	resp, err := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post(s.config.WebhookURL)

	if err != nil {
		return fmt.Errorf("failed to post webhook message: %w", err)
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return nil
}

func (s *Service) buildWebhookMessage(report *models.Report) *webhookMessage {
	summary := report.ExecutiveSummary
	message := &webhookMessage{
		Title: fmt.Sprintf("Event Report - %s", report.Event.Name),
		Text: fmt.Sprintf("Overall score %d/100 (%s) from %d feedback item(s)",
			summary.OverallScore, summary.SuccessLevel, summary.FeedbackTotal),
		Score: summary.OverallScore,
		Level: summary.SuccessLevel,
		Sections: []webhookFact{
			{Name: "Sentiment Ratio", Value: summary.SentimentRatio},
			{Name: "Alert Resolution", Value: fmt.Sprintf("%.1f%%", summary.AlertResolutionRate)},
			{Name: "Issue Resolution", Value: fmt.Sprintf("%.1f%%", summary.IssueResolutionRate)},
			{Name: "Unresolved Issues", Value: fmt.Sprintf("%d", summary.UnresolvedIssues)},
			{Name: "Generated", Value: report.ReportGeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC")},
		},
	}

	for i, insight := range report.Insights {
		if i >= 3 {
			break
		}
		message.Sections = append(message.Sections, webhookFact{
			Name:  fmt.Sprintf("Insight: %s", insight.Title),
			Value: insight.Content,
		})
	}

	return message
}

func (s *Service) sendEmail(report *models.Report) error {
	subject := fmt.Sprintf("Event Report - %s (score %d/100)",
		report.Event.Name, report.ExecutiveSummary.OverallScore)

	htmlBody, err := s.buildEmailHTML(report)
	if err != nil {
		return fmt.Errorf("failed to build email HTML: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPUsername)
	m.SetHeader("To", s.config.NotificationEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", s.buildEmailText(report))
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *Service) buildEmailHTML(report *models.Report) (string, error) {
	tmpl := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Event Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .header { background-color: #2b5797; color: white; padding: 20px; border-radius: 5px; }
        .summary { background-color: #f5f5f5; padding: 15px; margin: 20px 0; border-radius: 5px; }
        .item { border-left: 4px solid #2b5797; padding: 10px; margin: 10px 0; background-color: #fafafa; }
        .item-title { font-weight: bold; margin-bottom: 5px; }
        .positive { border-left-color: #107c10; }
        .negative { border-left-color: #d13438; }
        .warning { border-left-color: #ff8c00; }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.Event.Name}}</h1>
        <p>Report generated on {{.ReportGeneratedAt.Format "January 2, 2006 at 3:04 PM UTC"}}</p>
    </div>

    <div class="summary">
        <h2>Executive Summary</h2>
        <p><strong>Overall Score:</strong> {{.ExecutiveSummary.OverallScore}}/100 ({{.ExecutiveSummary.SuccessLevel}})</p>
        <p><strong>Feedback:</strong> {{.ExecutiveSummary.FeedbackTotal}} item(s), sentiment ratio {{.ExecutiveSummary.SentimentRatio}}</p>
        <p><strong>Alerts:</strong> {{.ExecutiveSummary.AlertsTotal}} ({{printf "%.1f" .ExecutiveSummary.AlertResolutionRate}}% resolved)</p>
        <p><strong>Issues:</strong> {{.ExecutiveSummary.IssuesTotal}} ({{.ExecutiveSummary.UnresolvedIssues}} unresolved)</p>
    </div>

    {{if .Insights}}
    <h2>Insights</h2>
    {{range .Insights}}
        <div class="item {{.Type}}">
            <div class="item-title">{{.Title}}</div>
            <p>{{.Content}}</p>
        </div>
    {{end}}
    {{end}}

    {{if .Recommendations}}
    <h2>Recommendations</h2>
    {{range .Recommendations}}
        <div class="item">
            <div class="item-title">{{.Title}} ({{.Priority}} priority, {{.Area}})</div>
            <p>{{.Description}}</p>
        </div>
    {{end}}
    {{end}}

    <hr>
    <p><small>This report was generated automatically by EventSentix.</small></p>
</body>
</html>
`

	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, report); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *Service) buildEmailText(report *models.Report) string {
	var text strings.Builder
	summary := report.ExecutiveSummary

	text.WriteString(fmt.Sprintf("Event Report - %s\n", report.Event.Name))
	text.WriteString(fmt.Sprintf("Generated: %s\n\n", report.ReportGeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC")))

	text.WriteString("EXECUTIVE SUMMARY\n")
	text.WriteString("=================\n")
	text.WriteString(fmt.Sprintf("Overall Score: %d/100 (%s)\n", summary.OverallScore, summary.SuccessLevel))
	text.WriteString(fmt.Sprintf("Feedback: %d item(s), sentiment ratio %s\n", summary.FeedbackTotal, summary.SentimentRatio))
	text.WriteString(fmt.Sprintf("Alerts: %d (%.1f%% resolved)\n", summary.AlertsTotal, summary.AlertResolutionRate))
	text.WriteString(fmt.Sprintf("Issues: %d (%d unresolved)\n", summary.IssuesTotal, summary.UnresolvedIssues))

	if len(report.Insights) > 0 {
		text.WriteString("\nINSIGHTS\n")
		text.WriteString("========\n")
		for i, insight := range report.Insights {
			text.WriteString(fmt.Sprintf("%d. [%s] %s: %s\n", i+1, insight.Type, insight.Title, insight.Content))
		}
	}

	if len(report.Recommendations) > 0 {
		text.WriteString("\nRECOMMENDATIONS\n")
		text.WriteString("===============\n")
		for i, rec := range report.Recommendations {
			text.WriteString(fmt.Sprintf("%d. [%s] %s (%s): %s\n", i+1, rec.Priority, rec.Title, rec.Area, rec.Description))
		}
	}

	text.WriteString("\n---\nThis report was generated automatically by EventSentix.\n")

	return text.String()
}
