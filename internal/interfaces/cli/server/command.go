// Package server implements the `teamtrack server` command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"teamtrack/internal/infrastructure/auth"
	"teamtrack/internal/infrastructure/config"
	"teamtrack/internal/infrastructure/database"
	"teamtrack/internal/infrastructure/migration"
	"teamtrack/internal/infrastructure/persistence/models"
	"teamtrack/internal/infrastructure/persistence/seeds"
	httpRouter "teamtrack/internal/interfaces/http"
	"teamtrack/internal/shared/logger"
	"teamtrack/internal/shared/version"
)

var (
	env            string
	skipMigrations bool
	skipSeeds      bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the TeamTrackPro HTTP API server with the configured database and middleware stack.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not run database migrations on startup")
	cmd.Flags().BoolVar(&skipSeeds, "skip-seeds", false, "Do not seed roles and the default admin account")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = ginMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server",
		"environment", env,
		"version", version.Version)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()

	if !skipMigrations {
		manager := migration.NewManager(&cfg.Migration)
		if err := manager.Migrate(db,
			&models.RoleModel{},
			&models.UserModel{},
			&models.ProjectModel{},
			&models.TicketModel{},
			&models.TicketCommentModel{},
			&models.ActivityLogModel{},
		); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
		log.Infow("migrations applied")
	}

	if !skipSeeds {
		hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
		if err := seeds.Run(db, hasher); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		log.Infow("roles and default admin seeded")
	}

	router, err := httpRouter.BuildRouter(db, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func ginMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
