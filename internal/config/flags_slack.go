package config

import "overseer/internal/cli"

const (
	SlackBotToken = "slack-bot-token"
	SlackChannel  = "slack-channel"
)

func GetSlackFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         SlackBotToken,
			DefaultValue: "",
			Usage:        "defines the bot token used to post operator notifications (leave empty to disable)",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         SlackChannel,
			DefaultValue: "operator-alerts",
			Usage:        "defines the channel that operator notifications are posted to",
			Type:         cli.FlagTypeString,
		},
	}
}
