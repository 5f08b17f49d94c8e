package get

import (
	"overseer/cmd/overseer/get/org"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(org.Command)
}

var Command = &cobra.Command{
	Use:     "get",
	Aliases: []string{"g"},
	Short:   "Retrieves a resource from your Overseer instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
