package deprovision

import (
	"overseer/cmd/overseer/deprovision/org"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(org.Command)
}

var Command = &cobra.Command{
	Use:   "deprovision",
	Short: "Irreversibly removes a tenant from your Overseer instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
