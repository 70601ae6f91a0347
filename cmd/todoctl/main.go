package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/config"
	"github.com/kebabmane/toDo/internal/db"
	"github.com/kebabmane/toDo/internal/logger"
	"github.com/kebabmane/toDo/internal/password"
	"github.com/kebabmane/toDo/internal/repositories"
	"github.com/kebabmane/toDo/internal/services"
)

// deps are the operations behind the commands, replaceable in tests.
type deps struct {
	loadConfig  func(path string) (*config.Config, error)
	migrateUp   func(dsn string) error
	migrateDown func(dsn string) error
	promote     func(ctx context.Context, cfg *config.Config, username string) error
}

func defaultDeps() deps {
	return deps{
		loadConfig:  config.Load,
		migrateUp:   db.MigrateUp,
		migrateDown: db.MigrateDown,
		promote:     promote,
	}
}

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(d deps) *cobra.Command {
	var (
		configPath string
		cfg        *config.Config
	)

	rootCmd := &cobra.Command{
		Use:           "todoctl",
		Short:         "Operator tool for the ToDo API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = d.loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to parse config: %w", err)
			}
			return logger.Initialize(cfg.App.LogLevel, "console")
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	migrateUpCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all up migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := d.migrateUp(cfg.Postgres.DSN()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}

	var force bool
	migrateDownCmd := &cobra.Command{
		Use:   "down",
		Short: "Revert all migrations, dropping every table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("refusing to drop all tables without --force")
			}
			if err := d.migrateDown(cfg.Postgres.DSN()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All migrations reverted.")
			return nil
		},
	}
	migrateDownCmd.Flags().BoolVar(&force, "force", false, "Confirm dropping all data")

	setAdminCmd := &cobra.Command{
		Use:   "set-admin <username>",
		Short: "Grant the admin role to an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			if err := d.promote(cmd.Context(), cfg, username); err != nil {
				if apperrors.IsKind(err, apperrors.KindNotFound) {
					return fmt.Errorf("user '%s' not found", username)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User '%s' is now an admin.\n", username)
			return nil
		},
	}

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd, setAdminCmd)
	return rootCmd
}

func promote(ctx context.Context, cfg *config.Config, username string) error {
	conn, err := db.Open(ctx, cfg.Postgres.DSN(), 1, 1)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer conn.Close()

	// A single statement, so no request transaction is needed.
	users := repositories.NewUserRepository(conn, nil)
	return services.NewAdminService(users, password.Hasher{}).PromoteToAdmin(ctx, username)
}
