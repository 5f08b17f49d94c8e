package flag

import (
	"fmt"

	"overseer/internal/cli"
	"overseer/internal/config"
	"overseer/internal/validate"
	"overseer/pkg/overseer"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = config.GetControllerUrlFlags().Append(cli.Flags{
	{
		Name:         "enabled",
		DefaultValue: true,
		Usage:        "sets the flag to enabled when true and disabled when false",
		Type:         cli.FlagTypeBool,
	},
})

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "flag <org-id> <flag-key>",
	Aliases: []string{"f"},
	Short:   "Sets a feature flag on an organization (super admins only)",
	Args:    cobra.ExactArgs(2),
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		orgId := args[0]
		flagKey := args[1]
		if err := validate.Uuid(orgId); err != nil {
			fmt.Printf("The provided org id (%s) was not valid\n", orgId)
			return cli.ErrorInvalidInput
		}
		if err := validate.FlagKey(flagKey); err != nil {
			fmt.Printf("The provided flag key (%s) was not valid: %s\n", flagKey, err)
			return cli.ErrorInvalidInput
		}

		controllerUrl := viper.GetString("controller-url")
		client, err := cli.RequireAuth(controllerUrl, "overseer/set/flag")
		if err != nil {
			return err
		}

		isEnabled := viper.GetBool("enabled")
		featureFlag, err := client.SetFeatureFlagV1(orgId, flagKey, overseer.SetFeatureFlagV1Input{
			Enabled: isEnabled,
		})
		if err != nil {
			return fmt.Errorf("controller request failed: %s", err)
		}

		state := "disabled"
		if featureFlag.Enabled {
			state = "enabled"
		}
		fmt.Printf("Flag '%s' is now %s for org '%s'\n", featureFlag.FlagKey, state, featureFlag.OrgId)
		return nil
	},
}
