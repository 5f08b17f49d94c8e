package slack

import (
	"fmt"
	"time"

	"overseer/internal/common"

	"github.com/slack-go/slack"
)

var instance *Notifier

// InitOpts configures the Init method
type InitOpts struct {
	// Token is a bot token with chat:write scope
	Token string

	// ChannelName is the channel that operator notifications land in
	ChannelName string

	ServiceLogs chan<- common.ServiceLog
}

// Init initialises the singleton notifier and resolves the configured
// channel name to its ID once, up front.
func Init(opts InitOpts) error {
	notifier := &Notifier{
		Client:      slack.New(opts.Token),
		ServiceLogs: opts.ServiceLogs,
	}
	channelId, err := notifier.resolveChannelId(opts.ChannelName)
	if err != nil {
		return fmt.Errorf("failed to resolve channel[%s]: %w", opts.ChannelName, err)
	}
	notifier.ChannelId = channelId
	instance = notifier
	return nil
}

// IsEnabled indicates whether notifications have been configured.
func IsEnabled() bool {
	return instance != nil
}

type Notifier struct {
	ChannelId   string
	Client      *slack.Client
	ServiceLogs chan<- common.ServiceLog
}

func (s *Notifier) resolveChannelId(channelName string) (string, error) {
	conversationCursor := ""
	for {
		channels, nextCursor, err := s.Client.GetConversations(&slack.GetConversationsParameters{
			Cursor:          conversationCursor,
			ExcludeArchived: true,
			Limit:           200,
			Types:           []string{"public_channel", "private_channel"},
		})
		if err != nil {
			return "", fmt.Errorf("failed to list channels: %w", err)
		}
		for _, ch := range channels {
			if ch.Name == channelName || "#"+ch.Name == channelName {
				return ch.ID, nil
			}
		}
		if nextCursor == "" {
			break
		}
		conversationCursor = nextCursor
	}
	return "", fmt.Errorf("channel %s not found", channelName)
}

type OrgDeprovisionedNotification struct {
	OrganizationId   string
	OrganizationName string
	AccountsRemoved  int
	RemovedBy        string
	Timestamp        time.Time
}

// NotifyOrgDeprovisioned posts a summary of a completed deprovisioning
// to the configured channel. Failures are logged, never raised: a
// missed notification must not fail the workflow it describes.
func NotifyOrgDeprovisioned(notification OrgDeprovisionedNotification) {
	if instance == nil {
		return
	}
	blocks := slack.Blocks{
		BlockSet: []slack.Block{
			slack.NewHeaderBlock(
				slack.NewTextBlockObject("plain_text", "🗑️ Organization Deprovisioned", false, false),
			),
			slack.NewContextBlock("", slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("Organization: `%s` (`%s`)", notification.OrganizationName, notification.OrganizationId), false, false)),
			slack.NewContextBlock("", slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("Accounts removed: `%d`", notification.AccountsRemoved), false, false)),
			slack.NewContextBlock("", slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("Removed by: `%s`", notification.RemovedBy), false, false)),
			slack.NewContextBlock("", slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("At: `%s` UTC", notification.Timestamp.UTC().Format("2006-01-02 15:04:05")), false, false)),
		},
	}
	if _, _, err := instance.Client.PostMessage(
		instance.ChannelId,
		slack.MsgOptionBlocks(blocks.BlockSet...),
	); err != nil && instance.ServiceLogs != nil {
		instance.ServiceLogs <- common.ServiceLogf(common.LogLevelWarn, "failed to send slack notification for org[%s]: %s", notification.OrganizationId, err)
	}
}
