// Package migration handles database schema migration.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"repairsync/internal/infrastructure/persistence/models"
	"repairsync/internal/shared/logger"
)

// AutoMigrateModels returns every model the schema migration covers.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketLifecycleModel{},
		&models.StatusChangeModel{},
		&models.TicketCommentModel{},
		&models.SyncOperationModel{},
	}
}

// Migrate runs gorm AutoMigrate for all registered models.
func Migrate(db *gorm.DB, log logger.Interface) error {
	migrateModels := AutoMigrateModels()

	log.Infow("starting database migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	log.Infow("database migration completed")
	return nil
}
