package overseer

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"overseer/cmd/overseer/create"
	"overseer/cmd/overseer/deprovision"
	"overseer/cmd/overseer/get"
	"overseer/cmd/overseer/list"
	"overseer/cmd/overseer/login"
	"overseer/cmd/overseer/logout"
	"overseer/cmd/overseer/run"
	"overseer/cmd/overseer/set"
	"overseer/cmd/overseer/start"
	"overseer/internal/cli"
	"overseer/internal/common"
	"overseer/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/viper"
)

var availableOutputs = []string{
	"text",
	"json",
}

var availableLogLevels = []string{
	string(common.LogLevelTrace),
	string(common.LogLevelDebug),
	string(common.LogLevelInfo),
	string(common.LogLevelWarn),
	string(common.LogLevelError),
}

var persistentFlags cli.Flags = cli.Flags{
	{
		Name:         "config",
		Short:        'C',
		DefaultValue: "~/.overseer/config",
		Usage:        "Defines the location of the global configuration used",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "log-level",
		Short:        'l',
		DefaultValue: "info",
		Usage:        fmt.Sprintf("Sets the log level (one of [%s])", strings.Join(availableLogLevels, ", ")),
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "output",
		Short:        'o',
		DefaultValue: "text",
		Usage:        fmt.Sprintf("Sets the output format where applicable (one of [%s])", strings.Join(availableOutputs, ", ")),
		Type:         cli.FlagTypeString,
	},
}

var flags cli.Flags = cli.Flags{
	{
		Name:         "docs",
		DefaultValue: false,
		Usage:        "When this flag is specified, generates Markdown documentation for the CLI application",
		Type:         cli.FlagTypeBool,
	},
	{
		Name:         "docs-path",
		DefaultValue: "./docs/cli",
		Usage:        "Specifies the location to generate documentation in",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	cobra.AddTemplateFunc("prependText", func() string {
		return cli.Logo + "\n"
	})
	Command.SetHelpTemplate(`{{ prependText }}` + Command.HelpTemplate())
	Command.SetVersionTemplate(cli.Logo + "\n" + `{{with .DisplayName}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}`)

	Command.AddCommand(create.Command)
	Command.AddCommand(deprovision.Command)
	Command.AddCommand(get.Command)
	Command.AddCommand(list.Command)
	Command.AddCommand(login.Command)
	Command.AddCommand(logout.Command)
	Command.AddCommand(run.Command)
	Command.AddCommand(set.Command)
	Command.AddCommand(start.Command)
	Command.SilenceErrors = true
	Command.SilenceUsage = true

	persistentFlags.AddToCommand(Command, true)
	flags.AddToCommand(Command)

	logrus.SetOutput(os.Stderr)
	cobra.OnInitialize(func() {
		persistentFlags.BindViper(Command, true)
		flags.BindViper(Command)
		cli.InitLogging(viper.GetString("log-level"))
		configPath := viper.GetString("config")
		logrus.Debugf("using configuration at path[%s]", configPath)
		config.LoadGlobal(configPath)
	})

	cli.InitConfig()
}

var Command = &cobra.Command{
	Use:     "overseer",
	Short:   "Operator tooling for administering SaaS tenants",
	Version: config.GetVersion(),
	Long:    "Operator tooling for administering SaaS tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		isGenerateDocs := viper.GetBool("docs")
		if isGenerateDocs {
			docsPath := viper.GetString("docs-path")
			logrus.Infof("generating documentation at path[%s]", docsPath)
			if err := os.MkdirAll(docsPath, 0755); err != nil {
				return err
			}
			commandMap := map[string]bool{}
			if err := doc.GenMarkdownTreeCustom(cmd, docsPath, func(in string) string {
				return ""
			}, func(in string) string {
				commandMap[in] = true
				return fmt.Sprintf("cli/%s", in)
			}); err != nil {
				return fmt.Errorf("failed to generate markdown tree")
			}
			commandList := []string{}
			for k := range commandMap {
				commandList = append(commandList, k)
			}
			var sidebar strings.Builder
			sort.Strings(commandList)
			sidebar.WriteString("* [Home](/)\n")
			sidebar.WriteString("* [overseer](cli/overseer \"Overseer CLI\")\n")
			for _, c := range commandList {
				commandName := strings.Split(c, ".")
				commandParts := strings.Split(commandName[0], "_")
				if len(commandParts) > 1 {
					for i := 0; i < len(commandParts)-1; i++ {
						sidebar.WriteString("  ")
					}
					sidebar.WriteString(fmt.Sprintf("* [%s](cli/%s \"Overseer CLI: %s\")\n", commandParts[len(commandParts)-1], c, strings.Join(commandParts, " ")))
				}
			}
			os.WriteFile(path.Join(docsPath, "_sidebar.md"), []byte(sidebar.String()), 0755)
			return nil
		}

		return cmd.Help()
	},
}
