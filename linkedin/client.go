package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://api.linkedin.com"

	// maxErrorBody bounds how much of a rejected response is carried in a
	// PublishError.
	maxErrorBody = 200
)

// PublishError reports a request the LinkedIn API rejected, carrying the HTTP
// status and a truncated response body for the error log.
type PublishError struct {
	StatusCode int
	Body       string
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("linkedin: request failed: %d | %s", e.StatusCode, e.Body)
}

// Client talks to the LinkedIn REST API with a bearer token.
type Client struct {
	BaseURL     string
	AccessToken string
	PersonID    string
	HTTPClient  *http.Client
	Logger      *logrus.Logger
}

func NewClient(accessToken, personID string, logger *logrus.Logger) *Client {
	return &Client{
		BaseURL:     defaultBaseURL,
		AccessToken: accessToken,
		PersonID:    personID,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		Logger:      logger,
	}
}

type shareCommentary struct {
	Text string `json:"text"`
}

type shareContent struct {
	ShareCommentary    shareCommentary `json:"shareCommentary"`
	ShareMediaCategory string          `json:"shareMediaCategory"`
}

type ugcPostRequest struct {
	Author          string                  `json:"author"`
	LifecycleState  string                  `json:"lifecycleState"`
	SpecificContent map[string]shareContent `json:"specificContent"`
	Visibility      map[string]string       `json:"visibility"`
}

type ugcPostResponse struct {
	ID string `json:"id"`
}

// Post publishes content as a public UGC post and returns the post id the API
// assigned. A non-2xx response is a PublishError; retries are the scheduler's
// responsibility, not this call's.
func (c *Client) Post(ctx context.Context, content string) (string, error) {
	reqBody := ugcPostRequest{
		Author:         "urn:li:person:" + c.PersonID,
		LifecycleState: "PUBLISHED",
		SpecificContent: map[string]shareContent{
			"com.linkedin.ugc.ShareContent": {
				ShareCommentary:    shareCommentary{Text: content},
				ShareMediaCategory: "NONE",
			},
		},
		Visibility: map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode post request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v2/ugcPosts", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build post request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &PublishError{StatusCode: resp.StatusCode, Body: truncatedBody(resp.Body)}
	}

	var result ugcPostResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode post response: %w", err)
	}

	c.Logger.Infof("Post published successfully, id: %s", result.ID)
	return result.ID, nil
}

type profileResponse struct {
	LocalizedFirstName string `json:"localizedFirstName"`
	LocalizedLastName  string `json:"localizedLastName"`
}

// TestConnection probes the profile endpoint to verify the access token.
func (c *Client) TestConnection(ctx context.Context) error {
	if c.AccessToken == "" {
		return fmt.Errorf("missing LINKEDIN_ACCESS_TOKEN")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v2/me", nil)
	if err != nil {
		return fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("api connection failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &PublishError{StatusCode: resp.StatusCode, Body: truncatedBody(resp.Body)}
	}

	var profile profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return fmt.Errorf("failed to decode profile response: %w", err)
	}

	c.Logger.Infof("LinkedIn API connected: %s %s", profile.LocalizedFirstName, profile.LocalizedLastName)
	return nil
}

func truncatedBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	return string(data)
}
