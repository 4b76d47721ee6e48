package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studydesk/dashboard/internal/migrate"
	"github.com/studydesk/dashboard/internal/repository"
	"github.com/studydesk/dashboard/migrations"
)

func newMigrateCommand(o *options) *cobra.Command {
	var fresh bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Apply the embedded SQL migrations that are not yet recorded in schema_migrations.

With --fresh every table is dropped first and all migrations run in order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := repository.NewPool(ctx, o.cfg.Database.URL)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer pool.Close()

			runner := migrate.New(pool, migrations.FS, o.logger.Sugar().Named("migrate"))
			if fresh {
				_, err = runner.Fresh(ctx)
			} else {
				_, err = runner.Up(ctx)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&fresh, "fresh", false, "drop all tables before migrating")
	return cmd
}
