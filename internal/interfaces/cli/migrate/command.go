// Package migrate implements the `teamtrack migrate` command tree.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"teamtrack/internal/infrastructure/auth"
	"teamtrack/internal/infrastructure/config"
	"teamtrack/internal/infrastructure/database"
	"teamtrack/internal/infrastructure/migration"
	"teamtrack/internal/infrastructure/persistence/seeds"
	"teamtrack/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect database schema migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newVersionCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		RunE:  runVersion,
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed roles and the default admin account",
		RunE:  runSeed,
	}
}

func initEnv() (*config.Config, *gorm.DB, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, database.Get(), logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, db, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	manager := migration.NewManager(&cfg.Migration)
	if err := manager.Migrate(db); err != nil {
		return err
	}

	log.Infow("migrations applied", "strategy", cfg.Migration.Strategy)
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, db, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGolangMigrateStrategy(cfg.Migration.ScriptsPath)
	gm, ok := strategy.(*migration.GolangMigrateStrategy)
	if !ok {
		return fmt.Errorf("down migrations require the golang_migrate strategy")
	}

	if err := gm.MigrateDown(db, steps); err != nil {
		return err
	}

	log.Infow("migrations rolled back", "steps", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, db, _, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGooseStrategy(cfg.Migration.ScriptsPath)
	goose, ok := strategy.(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("status requires the goose strategy")
	}

	return goose.Status(db)
}

func runVersion(cmd *cobra.Command, args []string) error {
	cfg, db, _, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGolangMigrateStrategy(cfg.Migration.ScriptsPath)
	gm, ok := strategy.(*migration.GolangMigrateStrategy)
	if !ok {
		return fmt.Errorf("version requires the golang_migrate strategy")
	}

	version, dirty, err := gm.Version(db)
	if err != nil {
		return err
	}

	state := "clean"
	if dirty {
		state = "dirty"
	}
	fmt.Printf("schema version %d (%s)\n", version, state)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, db, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	if err := seeds.Run(db, hasher); err != nil {
		return fmt.Errorf("failed to run seeds: %w", err)
	}

	log.Infow("seeds applied")
	return nil
}
