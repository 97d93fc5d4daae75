// reporter/slack.go
package reporter

import (
	"context"

	"github.com/deploymenttheory/jamf-api-tool/logger"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// SlackNotifier posts aggregate health messages to an incoming webhook.
type SlackNotifier struct {
	WebhookURL string
	log        logger.Logger
}

// NewSlackNotifier returns a notifier for the given webhook URL.
func NewSlackNotifier(webhookURL string, log logger.Logger) *SlackNotifier {
	return &SlackNotifier{WebhookURL: webhookURL, log: log}
}

// Post sends a plain-text message to the webhook.
func (s *SlackNotifier) Post(ctx context.Context, text string) error {
	err := slack.PostWebhookContext(ctx, s.WebhookURL, &slack.WebhookMessage{Text: text})
	if err != nil {
		return s.log.Error("Failed to post Slack webhook", zap.Error(err))
	}
	s.log.Debug("Posted Slack webhook", zap.Int("payload_size", len(text)))
	return nil
}
