package login

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
		Name:         "email",
		DefaultValue: "",
		Usage:        "the email address of your operator account",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "password",
		DefaultValue: "",
		Usage:        "the password for your operator account",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "totp",
		DefaultValue: "",
		Usage:        "the current authenticator code, required when your account is enrolled into mfa",
		Type:         cli.FlagTypeString,
	},
})

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "login",
	Short: "Login to your Overseer instance",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, err := overseer.GetSessionToken()
		if err == nil {
			return fmt.Errorf("looks like you're already logged in, run `overseer logout` first before running this command")
		}

		inputPassword := viper.GetString("password")
		if inputPassword != "" {
			fmt.Println(
				"!!! WARNING !!!\n" +
					"Using a password directly on the command line isn't generally recommended\n" +
					"since anyone can see it using the `history` command. Run `history -c` to\n" +
					"remove this from this shell if this is a shared shell")
		}

		fmt.Printf("\nLogging into\n%s\n", cli.Logo)

		model := cli.CreatePrompt(cli.PromptOpts{
			Buttons: []cli.PromptButton{
				{
					Label: "Login",
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
					Placeholder: "Your email address",
					Type:        cli.PromptString,
					Value:       viper.GetString("email"),
				},
				{
					Id:          "password",
					Placeholder: "Your password",
					Type:        cli.PromptPassword,
					Value:       inputPassword,
				},
				{
					Id:          "totp",
					Placeholder: "Authenticator code (leave blank if not enrolled)",
					Type:        cli.PromptString,
					Value:       viper.GetString("totp"),
				},
			},
		})
		prompt := tea.NewProgram(model)
		if _, err := prompt.Run(); err != nil {
			return fmt.Errorf("failed to get user input: %s", err)
		}
		if model.GetExitCode() == cli.PromptCancelled {
			return errors.New("See you soon maybe?")
		}

		email := model.GetValue("email")
		if err := validate.Email(email); err != nil {
			fmt.Printf("The provided email (%s) was not valid\n", email)
			return fmt.Errorf("email invalid")
		}
		password := model.GetValue("password")

		controllerUrl := viper.GetString("controller-url")
		client, err := overseer.NewClient(overseer.NewClientOpts{
			ControllerUrl: controllerUrl,
			Id:            "overseer/login",
		})
		if err != nil {
			return fmt.Errorf("failed to create controller client: %s", err)
		}

		sessionToken, err := client.CreateSessionV1(overseer.CreateSessionV1Input{
			Email:    email,
			Password: password,
			Totp:     model.GetValue("totp"),
		})
		if err != nil {
			if errors.Is(err, overseer.ErrorMfaTokenRequired) {
				fmt.Println("This account is enrolled into MFA, enter your authenticator code when prompted")
				return fmt.Errorf("totp code required")
			}
			if errors.Is(err, overseer.ErrorLoginFailed) {
				fmt.Println("The provided credentials don't seem correct, try again")
				return fmt.Errorf("credentials validation failed")
			}
			return fmt.Errorf("failed to create session for unexpected reasons: %s", err)
		}

		sessionFilePath, err := overseer.SaveSessionToken(sessionToken.Value)
		if err != nil {
			return fmt.Errorf("failed to save session token: %s", err)
		}

		if !config.Global.IsGlobalConfigExists() {
			config.Global.ControllerUrl = controllerUrl
			if err := config.SaveGlobal(viper.GetString("config")); err != nil {
				fmt.Printf("We couldn't save your configuration, the default controller url will be used next time: %s\n", err)
			}
		}

		fmt.Printf("Welcome back!\nSession ID: %s\nToken path: %s\n", sessionToken.SessionId, sessionFilePath)
		return nil
	},
}
