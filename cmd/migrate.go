package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	root "relay"
	"relay/internal/config"
	"relay/pkg/logger"
)

// migrateRiverQueue brings the River job queue schema up to the newest
// version the linked library knows about. It is a no-op when the schema is
// already current.
func migrateRiverQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}

	all := migrator.AllVersions()
	target := all[len(all)-1].Version

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not read river schema version: %w", err)
	}
	if len(existing) > 0 && existing[len(existing)-1].Version >= target {
		return nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: target,
	}); err != nil {
		return fmt.Errorf("could not migrate river schema: %w", err)
	}

	return nil
}

// migrateCommand builds the 'migrate' subcommand. It runs the embedded goose
// migrations for the relay tables, then the River queue migrations.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db := strg.DB.(*sql.DB)

			goose.SetBaseFS(root.Migrations)
			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect", zap.Error(err))
			}
			if err := goose.Up(db, "migrations"); err != nil {
				logger.Fatal(ctx, "could not apply relay migrations", zap.Error(err))
			}

			if err := migrateRiverQueue(ctx, db); err != nil {
				logger.Fatal(ctx, "could not apply river migrations", zap.Error(err))
			}
		},
	}
}
