package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/config"
	"github.com/hbnb-platform/hbnb-api/internal/platform/logger"
	"github.com/hbnb-platform/hbnb-api/internal/platform/postgres"
	"github.com/hbnb-platform/hbnb-api/internal/service"
)

func newRootCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:          "hbnb-api",
		Short:        "HBnB rental listing API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configDir)
		},
	}

	cmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory containing an optional config.yaml")

	cmd.AddCommand(serveCmd(&configDir))
	cmd.AddCommand(migrateCmd(&configDir))
	cmd.AddCommand(createAdminCmd(&configDir))
	return cmd
}

func serveCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configDir)
		},
	}
}

func runServe(ctx context.Context, configDir string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, configDir)
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.serve(ctx)
}

func migrateCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|reset|version]",
		Short:     "Run database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: postgres.MigrationCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(*configDir)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			log, err := logger.Setup(cfg.Server)
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}

			db, err := openDatabase(cmd.Context(), cfg.Database, log)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			return postgres.RunMigrations(cmd.Context(), db, args[0], log)
		},
	}
}

func createAdminCmd(configDir *string) *cobra.Command {
	var in service.UserInput

	c := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.Password == "" {
				return errors.New("password is required")
			}

			app, err := newApplication(cmd.Context(), *configDir)
			if err != nil {
				return err
			}
			defer app.cleanup()

			in.IsAdmin = true
			user, err := app.facade.CreateUser(cmd.Context(), authz.System(), in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}

	c.Flags().StringVar(&in.FirstName, "first-name", "", "first name (required)")
	c.Flags().StringVar(&in.LastName, "last-name", "", "last name (required)")
	c.Flags().StringVar(&in.Email, "email", "", "email address (required)")
	c.Flags().StringVar(&in.Password, "password", "", "password (required)")

	_ = c.MarkFlagRequired("first-name")
	_ = c.MarkFlagRequired("last-name")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("password")
	return c
}
