package set

import (
	"overseer/cmd/overseer/set/flag"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(flag.Command)
}

var Command = &cobra.Command{
	Use:   "set",
	Short: "Updates a setting in your Overseer instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
