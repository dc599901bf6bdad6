package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"gymgate/internal/infrastructure/config"
	"gymgate/internal/infrastructure/database"
	"gymgate/internal/infrastructure/migration"
	"gymgate/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())
	cmd.AddCommand(newDownCommand())
	cmd.AddCommand(newStatusCommand())
	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newForceCommand())
	cmd.AddCommand(newCreateCommand())

	return cmd
}

func setup() (*config.Config, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, nil
}

func scriptsPath() (string, error) {
	return filepath.Abs("./internal/infrastructure/migration/scripts")
}

func golangMigrateStrategy(cfg *config.Config) (*migration.GolangMigrateStrategy, error) {
	path, err := scriptsPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scripts path: %w", err)
	}
	strategy, ok := migration.NewGolangMigrateStrategy(path, cfg.Database.Driver).(*migration.GolangMigrateStrategy)
	if !ok {
		return nil, fmt.Errorf("unexpected migration strategy type")
	}
	return strategy, nil
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			strategy, err := golangMigrateStrategy(cfg)
			if err != nil {
				return err
			}
			if err := strategy.Migrate(database.Get()); err != nil {
				return fmt.Errorf("migration up failed: %w", err)
			}

			logger.Info("migrations applied")
			return nil
		},
	}
}

func newDownCommand() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			strategy, err := golangMigrateStrategy(cfg)
			if err != nil {
				return err
			}
			if err := strategy.MigrateDown(database.Get(), steps); err != nil {
				return fmt.Errorf("migration down failed: %w", err)
			}

			logger.Info("migrations rolled back", "steps", steps)
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			path, err := scriptsPath()
			if err != nil {
				return err
			}

			strategy, ok := migration.NewGooseStrategy(path, migration.GooseDialect(cfg.Database.Driver)).(*migration.GooseStrategy)
			if !ok {
				return fmt.Errorf("unexpected migration strategy type")
			}
			return strategy.Status(database.Get())
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			strategy, err := golangMigrateStrategy(cfg)
			if err != nil {
				return err
			}

			version, dirty, err := strategy.GetVersion(database.Get())
			if err != nil {
				return fmt.Errorf("failed to get migration version: %w", err)
			}

			fmt.Printf("version: %d, dirty: %t\n", version, dirty)
			return nil
		},
	}
}

func newForceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "force <version>",
		Short: "Force the migration version without running migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}

			cfg, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			strategy, err := golangMigrateStrategy(cfg)
			if err != nil {
				return err
			}
			if err := strategy.Force(database.Get(), version); err != nil {
				return fmt.Errorf("failed to force version: %w", err)
			}

			logger.Info("migration version forced", "version", version)
			return nil
		},
	}
}

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new migration file pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := scriptsPath()
			if err != nil {
				return err
			}

			strategy, ok := migration.NewGooseStrategy(path, "mysql").(*migration.GooseStrategy)
			if !ok {
				return fmt.Errorf("unexpected migration strategy type")
			}
			return strategy.Create(args[0])
		},
	}
}
