package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"linkedin-agent/models"
)

// Tracker fetches post engagement from the analytics endpoint. The postId the
// publisher returns is the join key.
type Tracker struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewTracker(baseURL string) *Tracker {
	return &Tracker{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch retrieves the current metrics for a post.
func (t *Tracker) Fetch(ctx context.Context, postID string) (models.Engagement, error) {
	endpoint := fmt.Sprintf("%s/metrics?postId=%s", t.BaseURL, url.QueryEscape(postID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Engagement{}, fmt.Errorf("failed to build metrics request: %w", err)
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return models.Engagement{}, fmt.Errorf("metrics request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Engagement{}, fmt.Errorf("metrics request for post %s returned status %d", postID, resp.StatusCode)
	}

	var engagement models.Engagement
	if err := json.NewDecoder(resp.Body).Decode(&engagement); err != nil {
		return models.Engagement{}, fmt.Errorf("failed to decode metrics response: %w", err)
	}
	return engagement, nil
}
