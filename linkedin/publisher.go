package linkedin

import (
	"context"

	"github.com/sirupsen/logrus"

	"linkedin-agent/models"
)

// DryRunPostID is the sentinel recorded in the post history for dry-run
// publishes.
const DryRunPostID = "dry-run"

// Publisher wraps the client with the posting-enabled switch. When posting is
// disabled it never touches the network but still returns a result so the
// logging and idempotency paths are exercised exactly as in production.
type Publisher struct {
	Client  *Client
	Enabled bool
	Logger  *logrus.Logger
}

func NewPublisher(client *Client, enabled bool, logger *logrus.Logger) *Publisher {
	return &Publisher{Client: client, Enabled: enabled, Logger: logger}
}

// Publish issues at most one publish call. On failure nothing is retried
// here; the next scheduled trigger is the retry mechanism.
func (p *Publisher) Publish(ctx context.Context, content string) (models.PublishResult, error) {
	if !p.Enabled {
		p.Logger.Info("POSTING_ENABLED is not true. Dry-run: not posting to LinkedIn.")
		return models.PublishResult{OK: true, ID: DryRunPostID, DryRun: true}, nil
	}

	id, err := p.Client.Post(ctx, content)
	if err != nil {
		return models.PublishResult{}, err
	}
	return models.PublishResult{OK: true, ID: id}, nil
}
