package migration

import (
	"fmt"

	"gorm.io/gorm"

	"teamtrack/internal/shared/config"
	"teamtrack/internal/shared/logger"
)

type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy named in the configuration.
func NewManager(cfg *config.MigrationConfig) *Manager {
	var strategy Strategy

	switch cfg.Strategy {
	case "goose":
		strategy = NewGooseStrategy(cfg.ScriptsPath)
	case "automigrate":
		strategy = NewGormAutoMigrateStrategy()
	default:
		strategy = NewGolangMigrateStrategy(cfg.ScriptsPath)
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, models...); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
