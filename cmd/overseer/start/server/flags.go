package server

import (
	"overseer/internal/cli"
	"overseer/internal/config"
)

var flags cli.Flags = config.GetListenAddrFlags(54321).
	Append(config.GetMysqlFlags()).
	Append(config.GetRedisFlags()).
	Append(config.GetMongoFlags()).
	Append(config.GetNatsFlags()).
	Append(config.GetSlackFlags()).
	Append(cli.Flags{
		{
			Name:         "session-signing-token",
			DefaultValue: "super_secret_session_signing_token",
			Usage:        "specifies the token used to sign sessions",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         "service-account-secret",
			DefaultValue: "",
			Usage:        "specifies the secret that unlocks privileged tenant operations; deprovisioning stays disabled while this is empty",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         "auto-migrate",
			DefaultValue: true,
			Usage:        "applies any pending database migrations before serving",
			Type:         cli.FlagTypeBool,
		},
	})
