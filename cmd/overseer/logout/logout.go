package logout

import (
	"errors"
	"fmt"

	"overseer/internal/cli"
	"overseer/internal/config"
	"overseer/pkg/overseer"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = config.GetControllerUrlFlags()

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "logout",
	Short: "Logs out of Overseer from your terminal",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionToken, sessionFilePath, err := overseer.GetSessionToken()
		if err != nil {
			return fmt.Errorf("failed to get a session token: %s", err)
		}

		controllerUrl := viper.GetString("controller-url")
		client, err := overseer.NewClient(overseer.NewClientOpts{
			ControllerUrl: controllerUrl,
			BearerAuth: &overseer.NewClientBearerAuthOpts{
				Token: sessionToken,
			},
			Id: "overseer/logout",
		})
		if err != nil {
			return fmt.Errorf("failed to create controller client: %s", err)
		}
		sessionId := "unknown"
		output, err := client.DeleteSessionV1()
		if err != nil {
			if errors.Is(err, overseer.ErrorAuthRequired) {
				logrus.Infof("existing session was invalid, please login again")
			} else {
				return fmt.Errorf("failed to delete session: %s", err)
			}
		} else {
			sessionId = output.SessionId
		}

		if err := overseer.DeleteSessionToken(); err != nil {
			return fmt.Errorf("failed to remove file at path[%s], please do it yourself: %s", sessionFilePath, err)
		}

		fmt.Printf("\n%s\nSession ID '%s' is now closed\n", cli.Logo, sessionId)
		fmt.Printf("See you again\n")
		return nil
	},
}
