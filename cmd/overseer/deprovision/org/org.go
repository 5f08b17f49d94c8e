package org

import (
	"errors"
	"fmt"

	"overseer/internal/cli"
	"overseer/internal/config"
	"overseer/internal/validate"
	"overseer/pkg/overseer"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	tea "github.com/charmbracelet/bubbletea"
)

var flags cli.Flags = config.GetControllerUrlFlags().Append(cli.Flags{
	{
		Name:         "yes",
		DefaultValue: false,
		Usage:        "skips the interactive confirmations (use with care, this operation cannot be undone)",
		Type:         cli.FlagTypeBool,
	},
})

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "org <org-id>",
	Aliases: []string{"organisation", "organization", "o"},
	Short:   "Removes an organization and every account linked to it (super admins only)",
	Long:    "Removes an organization and every account linked to it. Account removals are attempted one by one and any that fail are reported without stopping the run; the organization itself is always removed. This cannot be undone.",
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
		client, err := cli.RequireAuth(controllerUrl, "overseer/deprovision/org")
		if err != nil {
			return err
		}

		org, err := client.GetOrgV1(orgId)
		if err != nil {
			return fmt.Errorf("failed to resolve org[%s]: %s", orgId, err)
		}
		memberCount := 0
		if org.UserCount != nil {
			memberCount = *org.UserCount
		}

		if !viper.GetBool("yes") {
			if err := cli.ShowWarningWithConfirmation(fmt.Sprintf(
				"You are about to remove organization '%s' (%s) together\nwith its %v member account(s). This cannot be undone.",
				org.Name,
				org.Code,
				memberCount,
			)); err != nil {
				return errors.New("deprovisioning cancelled")
			}

			model := cli.CreatePrompt(cli.PromptOpts{
				Title: fmt.Sprintf("Type the organization code ('%s') to confirm", org.Code),
				Buttons: []cli.PromptButton{
					{
						Label: "Deprovision",
						Type:  cli.PromptButtonSubmit,
					},
					{
						Label: "Cancel / Ctrl + C",
						Type:  cli.PromptButtonCancel,
					},
				},
				Inputs: []cli.PromptInput{
					{
						Id:          "code",
						Placeholder: org.Code,
						Type:        cli.PromptString,
					},
				},
			})
			prompt := tea.NewProgram(model)
			if _, err := prompt.Run(); err != nil {
				return fmt.Errorf("failed to get user input: %s", err)
			}
			if model.GetExitCode() == cli.PromptCancelled {
				return errors.New("deprovisioning cancelled")
			}
			if model.GetValue("code") != org.Code {
				return fmt.Errorf("the entered code did not match '%s', nothing was removed", org.Code)
			}
		}

		output, err := client.DeprovisionOrgV1(overseer.DeprovisionOrgV1Input{
			OrganizationId: orgId,
		})
		if err != nil {
			var deprovisionError *overseer.DeprovisionError
			if errors.As(err, &deprovisionError) {
				fmt.Printf("Deprovisioning failed (%s): %s\n", deprovisionError.Kind, deprovisionError.Details)
				return errors.New("deprovisioning failed")
			}
			return fmt.Errorf("deprovisioning failed: %s", err)
		}

		fmt.Println(output.Message)
		return nil
	},
}
