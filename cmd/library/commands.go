package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sociopath-little-dragon/library-bd/library/app"
	"github.com/sociopath-little-dragon/library-bd/library/config"
	"github.com/sociopath-little-dragon/library-bd/library/migrations"
	"github.com/sociopath-little-dragon/library-bd/pkg/logger"
	"github.com/sociopath-little-dragon/library-bd/pkg/postgres"
	"github.com/sociopath-little-dragon/library-bd/pkg/serializer"
)

type configLoader func(cmd *cobra.Command) (config.Config, error)

func newServeCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the overdue fines scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), cfg)
		},
	}
}

func newMigrateCmd(load configLoader) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	for _, c := range []struct {
		use   string
		short string
		run   func(db *sqlx.DB) error
	}{
		{"up", "Apply all pending migrations", func(db *sqlx.DB) error { return postgres.MigrateUp(db, migrations.MigrationFiles) }},
		{"down", "Roll back the last migration", func(db *sqlx.DB) error { return postgres.MigrateDown(db, migrations.MigrationFiles) }},
		{"status", "Print applied and pending migrations", func(db *sqlx.DB) error { return postgres.MigrateStatus(db, migrations.MigrationFiles) }},
	} {
		c := c
		migrate.AddCommand(&cobra.Command{
			Use:   c.use,
			Short: c.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := load(cmd)
				if err != nil {
					return err
				}
				db, err := postgres.Open(cmd.Context(), cfg.Database.DSN())
				if err != nil {
					return err
				}
				defer db.Close()
				return c.run(db)
			},
		})
	}
	return migrate
}

func newLibrarianCmd(load configLoader) *cobra.Command {
	var req app.CreateLibrarianRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a librarian account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			log := logger.NewLogger(cfg.Log, "library-cli")
			deps, err := app.Build(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer deps.Close(log)

			librarian, err := deps.Service.CreateLibrarian(cmd.Context(), req)
			if err != nil {
				return err
			}
			log.Info("librarian created", zap.Int64("id", librarian.ID), zap.String("email", librarian.Email))
			return printJSON(cmd, librarian)
		},
	}
	create.Flags().StringVar(&req.Name, "name", "", "full name")
	create.Flags().StringVar(&req.Email, "email", "", "login email")
	create.Flags().StringVar(&req.Password, "password", "", "initial password")
	create.Flags().StringVar(&req.Position, "position", "", "job title")
	for _, f := range []string{"name", "email", "password"} {
		_ = create.MarkFlagRequired(f)
	}

	librarian := &cobra.Command{
		Use:   "librarian",
		Short: "Manage librarian accounts",
	}
	librarian.AddCommand(create)
	return librarian
}

func newFinesCmd(load configLoader) *cobra.Command {
	var rate string
	auto := &cobra.Command{
		Use:   "auto",
		Short: "Create fines for every overdue loan without one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			log := logger.NewLogger(cfg.Log, "library-cli")
			deps, err := app.Build(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer deps.Close(log)

			dailyRate := deps.Service.DailyRate()
			if rate != "" {
				if dailyRate, err = decimal.NewFromString(rate); err != nil {
					return fmt.Errorf("--rate: %w", err)
				}
			}
			fines, err := deps.Service.AutoCreateOverdueFines(cmd.Context(), dailyRate)
			if err != nil {
				return err
			}
			return printJSON(cmd, fines)
		},
	}
	auto.Flags().StringVar(&rate, "rate", "", "daily rate, FINES_DAILY_RATE when empty")

	fines := &cobra.Command{
		Use:   "fines",
		Short: "Fine maintenance jobs",
	}
	fines.AddCommand(auto)
	return fines
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := serializer.JSON.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
