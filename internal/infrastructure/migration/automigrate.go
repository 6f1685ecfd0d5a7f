package migration

import (
	"fmt"

	"gorm.io/gorm"

	"licenza/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns every model the schema is built from.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CompanyModel{},
		&models.LicenseModel{},
		&models.AlertSettingsModel{},
		&models.NotificationModel{},
	}
}

// Run applies the schema to the connected database.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
