package orgs

import (
	"encoding/json"
	"fmt"

	"overseer/internal/cli"
	"overseer/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = config.GetControllerUrlFlags()

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "orgs",
	Aliases: []string{"organisations", "organizations", "org", "o"},
	Short:   "Lists the organizations in your Overseer instance",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		controllerUrl := viper.GetString("controller-url")
		client, err := cli.RequireAuth(controllerUrl, "overseer/list/orgs")
		if err != nil {
			return err
		}

		listOrgsOutput, err := client.ListOrgsV1()
		if err != nil {
			return fmt.Errorf("controller request failed: %s", err)
		}

		outputFormat := viper.GetString("output")
		switch outputFormat {
		case "json":
			o, _ := json.MarshalIndent(listOrgsOutput, "", "  ")
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			table := cli.NewTable(cli.NewTableOpts{
				Headers: []string{"id", "code", "name", "plan", "members", "created at"},
				Rows: func(t *cli.Table) error {
					for _, org := range listOrgsOutput {
						memberCount := 0
						if org.UserCount != nil {
							memberCount = *org.UserCount
						}
						t.NewRow(org.Id, org.Code, org.Name, org.Plan, memberCount, org.CreatedAt.Local().Format(cli.TimestampHuman))
					}
					return nil
				},
			})
			fmt.Println(table.Render().GetString())
		}

		return nil
	},
}
