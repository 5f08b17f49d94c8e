package run

import (
	"overseer/cmd/overseer/run/migrations"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(migrations.Command)
}

var Command = &cobra.Command{
	Use:   "run",
	Short: "Runs a one-off operational task",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
