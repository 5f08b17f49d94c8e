package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"overseer/internal/audit"
	"overseer/internal/cli"
	"overseer/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var flags cli.Flags = config.GetMongoFlags().Append(cli.Flags{
	{
		Name:         "entity-id",
		DefaultValue: "",
		Usage:        "the entity whose trail should be listed (an operator's user id, or their email for login entries)",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "entity-type",
		DefaultValue: string(audit.OperatorEntity),
		Usage:        "the type of the entity being queried",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "limit",
		DefaultValue: 50,
		Usage:        "the maximum number of entries to return",
		Type:         cli.FlagTypeInteger,
	},
})

func init() {
	flags.AddToCommand(Command)
}

// Command reads the audit trail from the audit store directly; the
// trail is an operator accountability record and is deliberately not
// exposed over the API it audits.
var Command = &cobra.Command{
	Use:     "audit",
	Aliases: []string{"a"},
	Short:   "Lists the audit trail of an operator account",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		entityId := viper.GetString("entity-id")
		if entityId == "" {
			fmt.Println("An --entity-id is needed to query the audit trail")
			return cli.ErrorInvalidInput
		}

		mongoAddr := net.JoinHostPort(viper.GetString("mongo-host"), viper.GetString("mongo-port"))
		connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoClient, err := mongo.Connect(connectCtx, options.Client().
			ApplyURI(fmt.Sprintf("mongodb://%s", mongoAddr)).
			SetAuth(options.Credential{
				Username: viper.GetString("mongo-username"),
				Password: viper.GetString("mongo-password"),
			}))
		connectCancel()
		if err != nil {
			return fmt.Errorf("failed to connect to audit store: %w", err)
		}
		if err := audit.InitMongo(mongoClient); err != nil {
			return fmt.Errorf("failed to initialise audit store: %w", err)
		}

		entries, err := audit.GetByEntity(
			entityId,
			audit.EntityType(viper.GetString("entity-type")),
			time.Now(),
			int64(viper.GetInt("limit")),
		)
		if err != nil {
			return fmt.Errorf("failed to query audit trail: %w", err)
		}

		outputFormat := viper.GetString("output")
		switch outputFormat {
		case "json":
			o, _ := json.MarshalIndent(entries, "", "  ")
			fmt.Println(string(o))
		case "text":
			fallthrough
		default:
			table := cli.NewTable(cli.NewTableOpts{
				Headers: []string{"timestamp", "status", "activity"},
				Rows: func(t *cli.Table) error {
					for _, entry := range entries {
						t.NewRow(entry.Timestamp.Local().Format(cli.TimestampHuman), string(entry.Status), audit.Interpret(entry))
					}
					return nil
				},
			})
			fmt.Println(table.Render().GetString())
		}

		return nil
	},
}
