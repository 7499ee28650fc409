package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"json2reqif/internal/logger"
	"json2reqif/internal/settings"
)

// app carries state shared by all subcommands. Settings and logger are
// resolved once flags are parsed.
type app struct {
	viper    *viper.Viper
	settings *settings.Settings
	logger   *zap.Logger
}

// NewRootCmd creates the root json2reqif command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{viper: settings.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "json2reqif",
		Short: "json2reqif - convert JSON requirement exports to ReqIF",
		Long: `json2reqif converts a JSON document into a ReqIF 1.0 XML document.

A mapping file (YAML or JSON) tells the converter where specifications and
requirements live in the input and how their attributes are typed.

Settings come from defaults, an optional settings file (--settings),
JSON2REQIF_* environment variables and flags, in increasing precedence.`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	flags.Bool("json-logs", false, "Write logs as JSON")
	flags.String("settings", "", "Settings file (yaml, json or toml)")
	flags.String("seed", "", "Seed for reproducible identifiers")

	_ = a.viper.BindPFlag("verbosity", flags.Lookup("verbose"))
	_ = a.viper.BindPFlag("log.json", flags.Lookup("json-logs"))
	_ = a.viper.BindPFlag("ids.seed", flags.Lookup("seed"))

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newValidateCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("settings")
	if err != nil {
		return err
	}

	s, err := settings.Load(a.viper, path)
	if err != nil {
		return err
	}

	a.settings = s
	a.logger = logger.New(logger.Options{
		Verbosity: s.Verbosity,
		JSON:      s.Log.JSON,
		Output:    cmd.ErrOrStderr(),
	})

	return nil
}
