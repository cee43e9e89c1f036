package ingestion

import (
	"context"
	"testing"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSources_NamesAndEnablement(t *testing.T) {
	tests := []struct {
		name     string
		source   Source
		wantName string
		enabled  bool
	}{
		{"twitter with token", NewTwitterSource("token"), models.SourceTwitter, true},
		{"twitter without token", NewTwitterSource(""), models.SourceTwitter, false},
		{"instagram with token", NewInstagramSource("token"), models.SourceInstagram, true},
		{"instagram without token", NewInstagramSource(""), models.SourceInstagram, false},
		{"linkedin with token", NewLinkedInSource("token"), models.SourceLinkedIn, true},
		{"linkedin without token", NewLinkedInSource(""), models.SourceLinkedIn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.source.Name())
			assert.Equal(t, tt.enabled, tt.source.IsEnabled())
		})
	}
}

func TestSources_DisabledFetchReturnsNothing(t *testing.T) {
	event := &models.Event{ID: "ev1", Name: "Expo"}
	since := time.Now().Add(-time.Hour)

	for _, source := range []Source{
		NewTwitterSource(""),
		NewInstagramSource(""),
		NewLinkedInSource(""),
	} {
		feedback, err := source.Fetch(context.Background(), event, since)

		require.NoError(t, err)
		assert.Nil(t, feedback)
	}
}
