package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// InstagramSource polls the Instagram Graph API hashtag search for event tags
type InstagramSource struct {
	accessToken string
	client      *resty.Client
}

type instagramMediaResponse struct {
	Data []struct {
		ID        string `json:"id"`
		Caption   string `json:"caption"`
		Timestamp string `json:"timestamp"`
	} `json:"data"`
}

// NewInstagramSource creates a new Instagram source
func NewInstagramSource(accessToken string) *InstagramSource {
	return &InstagramSource{
		accessToken: accessToken,
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", "EventSentix/1.0"),
	}
}

func (i *InstagramSource) Name() string {
	return models.SourceInstagram
}

func (i *InstagramSource) IsEnabled() bool {
	return i.accessToken != ""
}

func (i *InstagramSource) Fetch(ctx context.Context, event *models.Event, since time.Time) ([]models.Feedback, error) {
	if !i.IsEnabled() {
		logrus.Debug("Instagram source disabled - missing access token")
		return nil, nil
	}

	hashtag := strings.ToLower(strings.ReplaceAll(event.Name, " ", ""))

	resp, err := i.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":            hashtag,
			"fields":       "id,caption,timestamp",
			"access_token": i.accessToken,
		}).
		Get("https://graph.instagram.com/ig_hashtag_search")
	if err != nil {
		return nil, fmt.Errorf("instagram search failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("instagram API returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var result instagramMediaResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse instagram response: %w", err)
	}

	var feedback []models.Feedback
	for _, media := range result.Data {
		createdAt, err := time.Parse(time.RFC3339, media.Timestamp)
		if err != nil {
			createdAt = time.Now().UTC()
		}
		if createdAt.Before(since) {
			continue
		}
		feedback = append(feedback, models.Feedback{
			EventID:   event.ID,
			Source:    models.SourceInstagram,
			Text:      media.Caption,
			CreatedAt: createdAt,
		})
	}

	logrus.Debugf("Found %d instagram posts for event %s", len(feedback), event.ID)
	return feedback, nil
}
