package main

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-fundamentos"
	"github.com/robbyt/go-fundamentos/engines/types"
	"github.com/robbyt/go-fundamentos/internal/config"
	"github.com/robbyt/go-fundamentos/lessons"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the resolved configuration from the root command to its subcommands.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        config.Config
	logHandler slog.Handler

	// catalog overrides the embedded lessons when set.
	catalog *lessons.Catalog
}

func (a *app) runner(engine types.Type) (*fundamentos.Runner, error) {
	opts := []fundamentos.Option{
		fundamentos.WithEngine(engine),
		fundamentos.WithLogHandler(a.logHandler),
	}
	if a.catalog != nil {
		opts = append(opts, fundamentos.WithCatalog(a.catalog))
	}
	return fundamentos.New(opts...)
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{v: config.New()})
}

func newRootCmdFor(a *app) *cobra.Command {

	root := &cobra.Command{
		Use:   "fundamentos",
		Short: "Introductory programming lessons on embedded scripting engines",
		Long: `fundamentos runs four short lessons (variables, conditionals, loops and
functions) written in Starlark and Risor, and checks that both renditions
print exactly the expected output.

Lesson output goes to stdout; diagnostics go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, a.configPath)
			if err != nil {
				return err
			}
			handler, err := cfg.Log.Handler(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logHandler = handler
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file (or set "+config.EnvConfigFile+")")
	flags.StringP("engine", "e", "", "script engine: starlark or risor (default: starlark; verify checks all)")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")

	for key, name := range map[string]string{
		config.KeyEngine:    "engine",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newRunCmd(a),
		newVerifyCmd(a),
	)
	return root
}
