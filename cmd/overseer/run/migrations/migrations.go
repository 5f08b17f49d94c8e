package migrations

import (
	"fmt"

	"overseer/internal/cli"
	"overseer/internal/common"
	"overseer/internal/config"
	"overseer/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = config.GetMysqlFlags().Append(cli.Flags{
	{
		Name:         "steps",
		DefaultValue: 0,
		Usage:        "applies only this many migration steps (negative values roll back, zero applies everything pending)",
		Type:         cli.FlagTypeInteger,
	},
})

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "migrations",
	Aliases: []string{"migration", "m"},
	Short:   "Applies the embedded database migrations",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		serviceLogs := make(chan common.ServiceLog, 64)
		common.StartServiceLogLoop(serviceLogs)

		logrus.Infof("establishing connection to database...")
		databaseConnection, err := database.ConnectMysql(database.ConnectOpts{
			ConnectionId: "overseer/run/migrations",
			Host:         viper.GetString("mysql-host"),
			Port:         viper.GetInt("mysql-port"),
			Username:     viper.GetString("mysql-username"),
			Password:     viper.GetString("mysql-password"),
			Database:     viper.GetString("mysql-database"),
		})
		if err != nil {
			return fmt.Errorf("failed to establish connection to database: %w", err)
		}

		if err := database.MigrateMysql(database.MigrateOpts{
			Connection:  databaseConnection,
			Steps:       viper.GetInt("steps"),
			ServiceLogs: serviceLogs,
		}); err != nil {
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		logrus.Infof("database migrations applied")
		return nil
	},
}
