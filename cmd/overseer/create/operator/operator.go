package operator

import (
	"errors"
	"fmt"
	"strings"

	"overseer/internal/auth"
	"overseer/internal/cli"
	"overseer/internal/config"
	"overseer/internal/controller/models"
	"overseer/internal/database"
	"overseer/internal/validate"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	tea "github.com/charmbracelet/bubbletea"
)

const totpIssuer = "overseer"

var flags cli.Flags = config.GetMysqlFlags().Append(cli.Flags{
	{
		Name:         "email",
		DefaultValue: "",
		Usage:        "the email address of the new operator account",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "role",
		DefaultValue: models.RoleSupport,
		Usage:        fmt.Sprintf("the role of the new operator account (one of [%s])", strings.Join(models.Roles, ", ")),
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "with-totp",
		DefaultValue: true,
		Usage:        "seeds a totp secret for the account and prints its provisioning qr code",
		Type:         cli.FlagTypeBool,
	},
})

func init() {
	flags.AddToCommand(Command)
}

// Command creates operator accounts by writing to the database
// directly; it is meant to be run on the server host since operator
// provisioning is deliberately not exposed over the API.
var Command = &cobra.Command{
	Use:     "operator",
	Aliases: []string{"op"},
	Short:   "Creates an operator account directly in the database",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		role := viper.GetString("role")
		isKnownRole := false
		for _, knownRole := range models.Roles {
			if role == knownRole {
				isKnownRole = true
				break
			}
		}
		if !isKnownRole {
			return fmt.Errorf("role[%s] is not one of [%s]", role, strings.Join(models.Roles, ", "))
		}

		model := cli.CreatePrompt(cli.PromptOpts{
			Title: "Creating an operator account",
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
					Id:          "email",
					Placeholder: "Email address of the account",
					Type:        cli.PromptString,
					Value:       viper.GetString("email"),
				},
				{
					Id:          "password",
					Placeholder: "Password for the account",
					Type:        cli.PromptPassword,
				},
			},
		})
		prompt := tea.NewProgram(model)
		if _, err := prompt.Run(); err != nil {
			return fmt.Errorf("failed to get user input: %s", err)
		}
		if model.GetExitCode() == cli.PromptCancelled {
			return errors.New("operator creation cancelled")
		}

		email := model.GetValue("email")
		if err := validate.Email(email); err != nil {
			fmt.Printf("The provided email (%s) was not valid\n", email)
			return cli.ErrorInvalidInput
		}
		password := model.GetValue("password")
		if err := validate.Password(password); err != nil {
			fmt.Printf("The provided password was not strong enough: %s\n", err)
			return cli.ErrorInvalidInput
		}

		databaseConnection, err := database.ConnectMysql(database.ConnectOpts{
			ConnectionId: "overseer/create/operator",
			Host:         viper.GetString("mysql-host"),
			Port:         viper.GetInt("mysql-port"),
			Username:     viper.GetString("mysql-username"),
			Password:     viper.GetString("mysql-password"),
			Database:     viper.GetString("mysql-database"),
		})
		if err != nil {
			return fmt.Errorf("failed to establish connection to database: %w", err)
		}

		var totpSecret *string
		if viper.GetBool("with-totp") {
			seed, err := auth.CreateTotpSeed(totpIssuer, email)
			if err != nil {
				return fmt.Errorf("failed to create totp seed: %w", err)
			}
			totpSecret = &seed
		}

		userId, err := models.CreateUserV1(models.CreateUserV1Opts{
			Db:         databaseConnection,
			Email:      email,
			Password:   password,
			Role:       role,
			TotpSecret: totpSecret,
		})
		if err != nil {
			return fmt.Errorf("failed to create operator account: %w", err)
		}

		fmt.Printf("Created operator account '%s' with role '%s'\nAccount ID: %s\n", email, role, userId)
		if totpSecret != nil {
			qr, err := auth.GetTotpQrCode(totpIssuer, email, *totpSecret)
			if err != nil {
				return fmt.Errorf("failed to render totp qr code: %w", err)
			}
			fmt.Printf("\nScan this with an authenticator app:\n\n%s\n", qr)
			fmt.Printf("Or enter the secret manually: %s\n", *totpSecret)
		}
		return nil
	},
}
