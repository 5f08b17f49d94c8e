package create

import (
	"overseer/cmd/overseer/create/operator"
	"overseer/cmd/overseer/create/org"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(operator.Command)
	Command.AddCommand(org.Command)
}

var Command = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "Creates a resource in your Overseer instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
