// Package app holds the dashboard command tree.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/studydesk/dashboard/internal/config"
	"github.com/studydesk/dashboard/internal/logging"
	"go.uber.org/zap"
)

// options is shared by every subcommand. cfg and logger are filled in by
// the root's PersistentPreRunE.
type options struct {
	v        *viper.Viper
	envFiles []string

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand builds the dashboard command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	o := &options{v: viper.New()}

	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Study dashboard admin API",
		Long:          "Admin API for contact messages, profiles, documents and email.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.initConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringSliceVar(&o.envFiles, "env-file", []string{".env"}, "dotenv files to load before reading the environment")
	flags.String("database-url", "", "PostgreSQL connection URL (DATABASE_URL)")
	flags.String("log-level", "", "DEBUG, INFO, WARN or ERROR (LOG_LEVEL)")
	_ = o.v.BindPFlag("DATABASE_URL", flags.Lookup("database-url"))
	_ = o.v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))

	root.AddCommand(newServeCommand(o), newMigrateCommand(o), newMailCommand(o))
	return root
}

func (o *options) initConfig() error {
	config.LoadDotEnv(o.envFiles...)

	cfg, err := config.Load(o.v)
	if err != nil {
		return err
	}
	logger, err := logging.Setup(cfg.Log.Level, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	o.cfg = cfg
	o.logger = logger
	return nil
}

// Execute runs the root command until it returns or the process is signalled.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
