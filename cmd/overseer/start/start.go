package start

import (
	"overseer/cmd/overseer/start/server"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(server.Command)
}

var Command = &cobra.Command{
	Use:     "start",
	Aliases: []string{"st"},
	Short:   "Starts one of Overseer's core services",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
