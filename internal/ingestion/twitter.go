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

// TwitterSource polls the Twitter/X recent search API for event mentions
type TwitterSource struct {
	bearerToken string
	client      *resty.Client
}

type twitterSearchResponse struct {
	Data []twitterTweet `json:"data"`
	Meta struct {
		ResultCount int `json:"result_count"`
	} `json:"meta"`
}

type twitterTweet struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// NewTwitterSource creates a new Twitter source
func NewTwitterSource(bearerToken string) *TwitterSource {
	return &TwitterSource{
		bearerToken: bearerToken,
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", "EventSentix/1.0"),
	}
}

func (t *TwitterSource) Name() string {
	return models.SourceTwitter
}

func (t *TwitterSource) IsEnabled() bool {
	return t.bearerToken != ""
}

func (t *TwitterSource) Fetch(ctx context.Context, event *models.Event, since time.Time) ([]models.Feedback, error) {
	if !t.IsEnabled() {
		logrus.Debug("Twitter source disabled - missing bearer token")
		return nil, nil
	}

	query := fmt.Sprintf("\"%s\" -is:retweet", event.Name)
	searchURL := fmt.Sprintf(
		"https://api.twitter.com/2/tweets/search/recent?query=%s&start_time=%s&max_results=100&tweet.fields=created_at",
		url.QueryEscape(query), since.UTC().Format(time.RFC3339))

	resp, err := t.client.R().
		SetContext(ctx).
		SetAuthToken(t.bearerToken).
		Get(searchURL)
	if err != nil {
		return nil, fmt.Errorf("twitter search failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("twitter API returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var result twitterSearchResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse twitter response: %w", err)
	}

	feedback := make([]models.Feedback, 0, len(result.Data))
	for _, tweet := range result.Data {
		createdAt, err := time.Parse(time.RFC3339, tweet.CreatedAt)
		if err != nil {
			createdAt = time.Now().UTC()
		}
		feedback = append(feedback, models.Feedback{
			EventID:   event.ID,
			Source:    models.SourceTwitter,
			Text:      tweet.Text,
			CreatedAt: createdAt,
		})
	}

	logrus.Debugf("Found %d tweets for event %s", len(feedback), event.ID)
	return feedback, nil
}
