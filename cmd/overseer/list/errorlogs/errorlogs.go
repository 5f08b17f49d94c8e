package errorlogs

import (
	"encoding/json"
	"fmt"
	"time"

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
		Usage:        "restricts the listing to error logs attributed to this organization",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "level",
		DefaultValue: "",
		Usage:        "restricts the listing to error logs at this level",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "since",
		DefaultValue: time.Duration(0),
		Usage:        "restricts the listing to error logs no older than this duration (eg. 24h)",
		Type:         cli.FlagTypeDuration,
	},
})

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "errorlogs",
	Aliases: []string{"errors", "errs", "e"},
	Short:   "Lists the error logs captured by your Overseer instance",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		controllerUrl := viper.GetString("controller-url")
		client, err := cli.RequireAuth(controllerUrl, "overseer/list/errorlogs")
		if err != nil {
			return err
		}

		listInput := overseer.ListErrorLogsV1Input{
			OrgId: viper.GetString("org-id"),
			Level: viper.GetString("level"),
		}
		if since := viper.GetDuration("since"); since > 0 {
			cutoff := time.Now().Add(-since)
			listInput.Since = &cutoff
		}
		listErrorLogsOutput, err := client.ListErrorLogsV1(listInput)
		if err != nil {
			return fmt.Errorf("controller request failed: %s", err)
		}

		outputFormat := viper.GetString("output")
		switch outputFormat {
		case "json":
			o, _ := json.MarshalIndent(listErrorLogsOutput, "", "  ")
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			table := cli.NewTable(cli.NewTableOpts{
				Headers: []string{"occurred at", "level", "org id", "source", "message"},
				Rows: func(t *cli.Table) error {
					for _, errorLog := range listErrorLogsOutput {
						orgId := ""
						if errorLog.OrgId != nil {
							orgId = *errorLog.OrgId
						}
						t.NewRow(errorLog.OccurredAt.Local().Format(cli.TimestampHuman), errorLog.Level, orgId, errorLog.Source, errorLog.Message)
					}
					return nil
				},
			})
			fmt.Println(table.Render().GetString())
		}

		return nil
	},
}
