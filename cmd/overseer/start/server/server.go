package server

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"overseer/internal/audit"
	"overseer/internal/cache"
	"overseer/internal/common"
	"overseer/internal/controller"
	"overseer/internal/database"
	"overseer/internal/integrations/slack"
	"overseer/internal/queue"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "server",
	Aliases: []string{"s"},
	Short:   "Starts the operator dashboard server",
	Long:    "Starts the operator dashboard server which exposes the API that operator tooling connects to",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logrus.Debugf("starting logging engine...")
		serviceLogs := make(chan common.ServiceLog, 64)
		common.StartServiceLogLoop(serviceLogs)
		logrus.Debugf("started logging engine")

		logrus.Infof("establishing connection to database...")
		connectionId := "overseer/server"
		databaseConnection, err := database.ConnectMysql(database.ConnectOpts{
			ConnectionId: connectionId,
			Host:         viper.GetString("mysql-host"),
			Port:         viper.GetInt("mysql-port"),
			Username:     viper.GetString("mysql-username"),
			Password:     viper.GetString("mysql-password"),
			Database:     viper.GetString("mysql-database"),
		})
		if err != nil {
			return fmt.Errorf("failed to establish connection to database: %w", err)
		}
		logrus.Debugf("established connection to database")

		if viper.GetBool("auto-migrate") {
			logrus.Infof("applying database migrations...")
			if err := database.MigrateMysql(database.MigrateOpts{
				Connection:  databaseConnection,
				ServiceLogs: serviceLogs,
			}); err != nil {
				return fmt.Errorf("failed to apply database migrations: %w", err)
			}
			logrus.Debugf("applied database migrations")
		}

		logrus.Infof("starting connection freshness verifier...")
		databaseConnectionOk := true
		databaseConnectionStatusLastUpdatedAt := time.Now()
		databaseConnectionStatusUpdates := make(chan bool)
		var databaseConnectionStatusMutex sync.Mutex
		go func() {
			for {
				statusUpdate := <-databaseConnectionStatusUpdates
				databaseConnectionStatusMutex.Lock()
				if statusUpdate != databaseConnectionOk {
					logAtLevel := logrus.Infof
					if !statusUpdate {
						logAtLevel = logrus.Warnf
					}
					logAtLevel("database connection freshness status switched to '%v'", statusUpdate)
					databaseConnectionStatusLastUpdatedAt = time.Now()
				}
				databaseConnectionOk = statusUpdate
				databaseConnectionStatusMutex.Unlock()
			}
		}()
		go func() {
			for {
				logrus.Tracef("verifying database connection freshness...")
				if err := database.CheckMysqlConnection(connectionId); err != nil {
					logrus.Errorf("failed to check mysql connection with id '%s': %s", connectionId, err)
					databaseConnectionStatusUpdates <- false
					if err := database.RefreshMysqlConnection(connectionId); err != nil {
						logrus.Errorf("failed to refresh mysql connection with id '%s': %s", connectionId, err)
					}
				} else {
					logrus.Tracef("database connection freshness verified")
					databaseConnectionStatusUpdates <- true
				}
				<-time.After(3 * time.Second)
			}
		}()

		logrus.Infof("establishing connection to cache...")
		if err := cache.InitRedis(cache.InitRedisOpts{
			Addr:        viper.GetString("redis-addr"),
			Username:    viper.GetString("redis-username"),
			Password:    viper.GetString("redis-password"),
			ServiceLogs: serviceLogs,
		}); err != nil {
			return fmt.Errorf("failed to initialise redis cache: %w", err)
		}
		logrus.Debugf("established connection to cache")

		logrus.Infof("establishing connection to audit store...")
		mongoAddr := net.JoinHostPort(viper.GetString("mongo-host"), viper.GetString("mongo-port"))
		mongoCtx, mongoCancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoClient, err := mongo.Connect(mongoCtx, options.Client().
			ApplyURI(fmt.Sprintf("mongodb://%s", mongoAddr)).
			SetAuth(options.Credential{
				Username: viper.GetString("mongo-username"),
				Password: viper.GetString("mongo-password"),
			}))
		mongoCancel()
		if err != nil {
			logrus.Warnf("failed to connect to audit store: %s", err)
			logrus.Warnf("audit logging is disabled")
		} else if err := audit.InitMongo(mongoClient); err != nil {
			logrus.Warnf("failed to initialise audit store: %s", err)
			logrus.Warnf("audit logging is disabled")
		} else {
			logrus.Debugf("established connection to audit store")
		}

		logrus.Infof("establishing connection to queue...")
		if err := queue.InitNats(queue.InitNatsOpts{
			Addr:        viper.GetString("nats-addr"),
			Username:    viper.GetString("nats-username"),
			Password:    viper.GetString("nats-password"),
			NKey:        viper.GetString("nats-nkey-value"),
			ServiceLogs: serviceLogs,
		}); err != nil {
			logrus.Warnf("failed to initialise queue: %s", err)
			logrus.Warnf("lifecycle events will be buffered in memory")
		} else {
			logrus.Debugf("established connection to queue")
		}

		slackBotToken := viper.GetString("slack-bot-token")
		if slackBotToken != "" {
			logrus.Infof("initialising notifications...")
			if err := slack.Init(slack.InitOpts{
				Token:       slackBotToken,
				ChannelName: viper.GetString("slack-channel"),
				ServiceLogs: serviceLogs,
			}); err != nil {
				logrus.Warnf("failed to initialise notifications: %s", err)
			} else {
				logrus.Debugf("initialised notifications")
			}
		}

		logrus.Infof("initialising application...")
		appHandler, err := controller.GetHttpApplication(controller.HttpApplicationOpts{
			DatabaseConnection: databaseConnection,
			ReadinessChecks: []func() error{
				func() error {
					if !databaseConnectionOk {
						return fmt.Errorf("database connection is pending restoration")
					}
					return nil
				},
			},
			LivenessChecks: []func() error{
				func() error {
					if !databaseConnectionOk && databaseConnectionStatusLastUpdatedAt.Before(time.Now().Add(-30*time.Second)) {
						return fmt.Errorf("database connection is invalid")
					}
					return nil
				},
			},
			ServiceAccountSecret: viper.GetString("service-account-secret"),
			ServiceLogs:          serviceLogs,
			SessionSigningToken:  viper.GetString("session-signing-token"),
		})
		if err != nil {
			return fmt.Errorf("failed to initialise application: %w", err)
		}
		logrus.Debugf("initialised application")

		logrus.Infof("initialising application server...")
		httpServerDone := make(chan common.Done)
		listenAddress := viper.GetString("listen-addr")
		server, err := common.NewHttpServer(common.NewHttpServerOpts{
			Addr:        listenAddress,
			Done:        httpServerDone,
			Handler:     appHandler,
			ServiceLogs: serviceLogs,
		})
		if err != nil {
			return fmt.Errorf("failed to create new http server: %w", err)
		}
		logrus.Debugf("initialised server")
		logrus.Infof("starting server...")
		if err := server.Start(); err != nil {
			return fmt.Errorf("failed to start http server: %w", err)
		}
		return nil
	},
}
