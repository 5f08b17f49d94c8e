package config

import "overseer/internal/cli"

func GetControllerUrlFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         "controller-url",
			Short:        'u',
			DefaultValue: "http://localhost:54321",
			Usage:        "the url of the controller service",
			Type:         cli.FlagTypeString,
		},
	}
}
