package org

import (
	"errors"
	"fmt"

	"overseer/internal/cli"
	"overseer/internal/config"
	"overseer/internal/controller/models"
	"overseer/internal/database"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	tea "github.com/charmbracelet/bubbletea"
)

var flags cli.Flags = config.GetMysqlFlags().Append(cli.Flags{
	{
		Name:         "code",
		DefaultValue: "",
		Usage:        "the unique short code of the new organization",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "name",
		DefaultValue: "",
		Usage:        "the display name of the new organization",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "plan",
		DefaultValue: "standard",
		Usage:        "the subscription plan of the new organization",
		Type:         cli.FlagTypeString,
	},
})

func init() {
	flags.AddToCommand(Command)
}

// Command provisions tenant organizations by writing to the database
// directly, same as operator creation; tenant onboarding is not an
// operator API concern.
var Command = &cobra.Command{
	Use:     "org",
	Aliases: []string{"organization", "o"},
	Short:   "Creates a tenant organization directly in the database",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		model := cli.CreatePrompt(cli.PromptOpts{
			Title: "Creating a tenant organization",
			Buttons: []cli.PromptButton{
				{
					Label: "Create",
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
					Placeholder: "Short code (eg. acme)",
					Type:        cli.PromptString,
					Value:       viper.GetString("code"),
				},
				{
					Id:          "name",
					Placeholder: "Display name (eg. Acme Pte Ltd)",
					Type:        cli.PromptString,
					Value:       viper.GetString("name"),
				},
			},
		})
		prompt := tea.NewProgram(model)
		if _, err := prompt.Run(); err != nil {
			return fmt.Errorf("failed to get user input: %s", err)
		}
		if model.GetExitCode() == cli.PromptCancelled {
			return errors.New("organization creation cancelled")
		}

		code := model.GetValue("code")
		name := model.GetValue("name")
		if code == "" || name == "" {
			fmt.Println("Both a code and a name are needed to create an organization")
			return cli.ErrorInvalidInput
		}

		databaseConnection, err := database.ConnectMysql(database.ConnectOpts{
			ConnectionId: "overseer/create/org",
			Host:         viper.GetString("mysql-host"),
			Port:         viper.GetInt("mysql-port"),
			Username:     viper.GetString("mysql-username"),
			Password:     viper.GetString("mysql-password"),
			Database:     viper.GetString("mysql-database"),
		})
		if err != nil {
			return fmt.Errorf("failed to establish connection to database: %w", err)
		}

		org, err := models.CreateOrgV1(models.CreateOrgV1Opts{
			Db:   databaseConnection,
			Code: code,
			Name: name,
			Plan: viper.GetString("plan"),
		})
		if err != nil {
			if errors.Is(err, models.ErrorDuplicateEntry) {
				return fmt.Errorf("an organization with code '%s' already exists", code)
			}
			return fmt.Errorf("failed to create organization: %w", err)
		}

		fmt.Printf("Created organization '%s' (%s) on plan '%s'\nOrganization ID: %s\n", org.Name, org.Code, org.Plan, org.GetId())
		return nil
	},
}
