package org

import (
	"encoding/json"
	"fmt"

	"overseer/internal/cli"
	"overseer/internal/config"
	"overseer/internal/validate"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = config.GetControllerUrlFlags()

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "org <org-id>",
	Aliases: []string{"organisation", "organization", "o"},
	Short:   "Retrieves an organization and its feature flags",
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		orgId := args[0]
		if err := validate.Uuid(orgId); err != nil {
			fmt.Printf("The provided org id (%s) was not valid\n", orgId)
			return cli.ErrorInvalidInput
		}

		controllerUrl := viper.GetString("controller-url")
		client, err := cli.RequireAuth(controllerUrl, "overseer/get/org")
		if err != nil {
			return err
		}

		org, err := client.GetOrgV1(orgId)
		if err != nil {
			return fmt.Errorf("controller request failed: %s", err)
		}
		featureFlags, err := client.ListFeatureFlagsV1(orgId)
		if err != nil {
			return fmt.Errorf("controller request failed: %s", err)
		}

		outputFormat := viper.GetString("output")
		switch outputFormat {
		case "json":
			o, _ := json.MarshalIndent(map[string]any{
				"org":   org,
				"flags": featureFlags,
			}, "", "  ")
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			memberCount := 0
			if org.UserCount != nil {
				memberCount = *org.UserCount
			}
			fmt.Printf("Id         : %s\n", org.Id)
			fmt.Printf("Code       : %s\n", org.Code)
			fmt.Printf("Name       : %s\n", org.Name)
			fmt.Printf("Plan       : %s\n", org.Plan)
			fmt.Printf("Members    : %v\n", memberCount)
			fmt.Printf("Created at : %s\n", org.CreatedAt.Local().Format(cli.TimestampHuman))
			if len(featureFlags) > 0 {
				table := cli.NewTable(cli.NewTableOpts{
					Headers: []string{"flag", "enabled", "updated at"},
					Rows: func(t *cli.Table) error {
						for _, flag := range featureFlags {
							t.NewRow(flag.FlagKey, flag.Enabled, flag.UpdatedAt.Local().Format(cli.TimestampHuman))
						}
						return nil
					},
				})
				fmt.Printf("\n%s", table.Render().GetString())
			}
		}

		return nil
	},
}
