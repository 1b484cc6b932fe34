// Package cli implements the simplylog command: it loads logging
// configuration and emits messages through a chosen sink, which is handy
// for checking a config file or comparing sinks side by side.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/philipp01105/simplylog/config"
	"github.com/philipp01105/simplylog/logger"
)

// diagLogger is the logger the command reports its own notes through.
const diagLogger = "simplylog"

type rootOptions struct {
	cfgFile string
	envFile string
}

// NewRootCommand builds the simplylog command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "simplylog",
		Short:         "Emit log messages through simplylog loggers",
		Long:          `Loads a simplylog configuration (file, .env, SIMPLYLOG_* variables, flags) and emits messages through the console or a bridged logging library.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (.yaml, .yml or .json)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file read before SIMPLYLOG_* variables")
	config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(newEmitCommand(opts), newLevelsCommand(opts))
	return cmd
}

// Execute executes the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// registry builds a Registry writing to the command's output streams and
// configured from, in increasing priority, the config file, the dotenv
// file, the environment and the command line.
func (o *rootOptions) registry(cmd *cobra.Command) (*logger.Registry, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}
	if o.envFile != "" {
		if err := config.LoadDotEnv(o.envFile); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	r := logger.NewRegistry(logger.RegistryConfig{
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	})
	if err := cfg.Apply(r); err != nil {
		return nil, err
	}
	return r, nil
}
