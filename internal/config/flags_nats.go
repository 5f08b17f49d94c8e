package config

import "overseer/internal/cli"

const (
	NatsAddr      = "nats-addr"
	NatsUsername  = "nats-username"
	NatsPassword  = "nats-password"
	NatsNkeyValue = "nats-nkey-value"
)

func GetNatsFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         NatsAddr,
			DefaultValue: "localhost:4222",
			Usage:        "Specifies the hostname (including port) of the NATS server",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         NatsUsername,
			DefaultValue: "overseer",
			Usage:        "Specifies the username used to login to NATS",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         NatsPassword,
			DefaultValue: "password",
			Usage:        "Specifies the password used to login to NATS",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         NatsNkeyValue,
			DefaultValue: "",
			Usage:        "Specifies the nkey used to login to NATS (takes precedence over credentials when set)",
			Type:         cli.FlagTypeString,
		},
	}
}
