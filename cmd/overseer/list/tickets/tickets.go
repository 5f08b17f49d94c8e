package tickets

import (
	"encoding/json"
	"fmt"

	"overseer/internal/cli"
	"overseer/internal/config"
	"overseer/pkg/overseer"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = config.GetControllerUrlFlags().Append(cli.Flags{
	{
		Name:         "org-id",
		DefaultValue: "",
		Usage:        "restricts the listing to tickets raised by this organization",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "status",
		DefaultValue: "",
		Usage:        "restricts the listing to tickets with this status (one of [open, pending, resolved, closed])",
		Type:         cli.FlagTypeString,
	},
})

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "tickets",
	Aliases: []string{"ticket", "t"},
	Short:   "Lists the support tickets in your Overseer instance",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		controllerUrl := viper.GetString("controller-url")
		client, err := cli.RequireAuth(controllerUrl, "overseer/list/tickets")
		if err != nil {
			return err
		}

		listTicketsOutput, err := client.ListTicketsV1(overseer.ListTicketsV1Input{
			OrgId:  viper.GetString("org-id"),
			Status: viper.GetString("status"),
		})
		if err != nil {
			return fmt.Errorf("controller request failed: %s", err)
		}

		outputFormat := viper.GetString("output")
		switch outputFormat {
		case "json":
			o, _ := json.MarshalIndent(listTicketsOutput, "", "  ")
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			table := cli.NewTable(cli.NewTableOpts{
				Headers: []string{"id", "org id", "subject", "status", "created at"},
				Rows: func(t *cli.Table) error {
					for _, ticket := range listTicketsOutput {
						t.NewRow(ticket.Id, ticket.OrgId, ticket.Subject, ticket.Status, ticket.CreatedAt.Local().Format(cli.TimestampHuman))
					}
					return nil
				},
			})
			fmt.Println(table.Render().GetString())
		}

		return nil
	},
}
