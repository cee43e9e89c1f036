package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// LinkedInSource polls LinkedIn post search for event mentions. LinkedIn's
// API only exposes content the application has permissions for, so this
// source typically returns organization posts and their comments.
type LinkedInSource struct {
	accessToken string
	client      *resty.Client
}

type linkedInPostsResponse struct {
	Elements []struct {
		ID         string `json:"id"`
		Commentary string `json:"commentary"`
		CreatedAt  int64  `json:"createdAt"` // epoch millis
	} `json:"elements"`
}

// NewLinkedInSource creates a new LinkedIn source
func NewLinkedInSource(accessToken string) *LinkedInSource {
	return &LinkedInSource{
		accessToken: accessToken,
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", "EventSentix/1.0"),
	}
}

func (l *LinkedInSource) Name() string {
	return models.SourceLinkedIn
}

func (l *LinkedInSource) IsEnabled() bool {
	return l.accessToken != ""
}

func (l *LinkedInSource) Fetch(ctx context.Context, event *models.Event, since time.Time) ([]models.Feedback, error) {
	if !l.IsEnabled() {
		logrus.Debug("LinkedIn source disabled - missing access token")
		return nil, nil
	}

	searchURL := fmt.Sprintf("https://api.linkedin.com/rest/posts?q=search&keywords=%s",
		url.QueryEscape(event.Name))

	resp, err := l.client.R().
		SetContext(ctx).
		SetAuthToken(l.accessToken).
		SetHeader("LinkedIn-Version", "202401").
		Get(searchURL)
	if err != nil {
		return nil, fmt.Errorf("linkedin search failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("linkedin API returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var result linkedInPostsResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse linkedin response: %w", err)
	}

	var feedback []models.Feedback
	for _, post := range result.Elements {
		createdAt := time.UnixMilli(post.CreatedAt).UTC()
		if createdAt.Before(since) {
			continue
		}
		feedback = append(feedback, models.Feedback{
			EventID:   event.ID,
			Source:    models.SourceLinkedIn,
			Text:      post.Commentary,
			CreatedAt: createdAt,
		})
	}

	logrus.Debugf("Found %d linkedin posts for event %s", len(feedback), event.ID)
	return feedback, nil
}
