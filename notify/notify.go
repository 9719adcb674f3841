package notify

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

const (
	colorInfo  = 0x00ff00 // Green
	colorError = 0xff0000 // Red
)

// Notifier posts cycle outcomes to a Discord admin channel. It is optional:
// New returns nil when no token or channel is configured, and every method is
// nil-safe, so callers never guard against a disabled notifier. Delivery is
// best-effort and never fails a cycle.
type Notifier struct {
	session   *discordgo.Session
	channelID string
	logger    *logrus.Logger
}

func New(token, channelID string, logger *logrus.Logger) (*Notifier, error) {
	if token == "" || channelID == "" {
		return nil, nil
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return &Notifier{session: session, channelID: channelID, logger: logger}, nil
}

// PostPublished announces a successful publish (or dry-run).
func (n *Notifier) PostPublished(postID, status string) {
	if n == nil {
		return
	}
	n.send(&discordgo.MessageEmbed{
		Title:     "Daily post published",
		Color:     colorInfo,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Post ID", Value: postID, Inline: true},
			{Name: "Status", Value: status, Inline: true},
		},
	})
}

// CycleFailed announces a failed scheduled cycle.
func (n *Notifier) CycleFailed(err error) {
	if n == nil {
		return
	}
	n.send(&discordgo.MessageEmbed{
		Title:     "Scheduled post failed",
		Color:     colorError,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Error", Value: err.Error()},
		},
	})
}

func (n *Notifier) send(embed *discordgo.MessageEmbed) {
	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		n.logger.WithError(err).Warn("Error sending notification to Discord")
	}
}
