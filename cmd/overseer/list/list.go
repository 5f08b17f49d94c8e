package list

import (
	"overseer/cmd/overseer/list/audit"
	"overseer/cmd/overseer/list/errorlogs"
	"overseer/cmd/overseer/list/orgs"
	"overseer/cmd/overseer/list/tickets"
	"overseer/cmd/overseer/list/users"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(audit.Command)
	Command.AddCommand(errorlogs.Command)
	Command.AddCommand(orgs.Command)
	Command.AddCommand(tickets.Command)
	Command.AddCommand(users.Command)
}

var Command = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "Lists resources in your Overseer instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
