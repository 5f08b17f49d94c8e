package users

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
		Usage:        "restricts the listing to members of this organization",
		Type:         cli.FlagTypeString,
	},
})

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "users",
	Aliases: []string{"user", "u"},
	Short:   "Lists the user accounts in your Overseer instance (super admins only)",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		controllerUrl := viper.GetString("controller-url")
		client, err := cli.RequireAuth(controllerUrl, "overseer/list/users")
		if err != nil {
			return err
		}

		listUsersOutput, err := client.ListUsersV1(overseer.ListUsersV1Input{
			OrgId: viper.GetString("org-id"),
		})
		if err != nil {
			return fmt.Errorf("controller request failed: %s", err)
		}

		outputFormat := viper.GetString("output")
		switch outputFormat {
		case "json":
			o, _ := json.MarshalIndent(listUsersOutput, "", "  ")
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			table := cli.NewTable(cli.NewTableOpts{
				Headers: []string{"id", "email", "role", "org id", "created at"},
				Rows: func(t *cli.Table) error {
					for _, user := range listUsersOutput {
						role := ""
						orgId := ""
						if user.Profile != nil {
							role = user.Profile.Role
							if user.Profile.CurrentOrganizationId != nil {
								orgId = *user.Profile.CurrentOrganizationId
							}
						}
						t.NewRow(user.Id, user.Email, role, orgId, user.CreatedAt.Local().Format(cli.TimestampHuman))
					}
					return nil
				},
			})
			fmt.Println(table.Render().GetString())
		}

		return nil
	},
}
