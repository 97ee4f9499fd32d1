package db

import (
	"github.com/Circulx/Profile-management/internal/app/model"
	"github.com/Circulx/Profile-management/pkg/logger"
)

// Migrate runs database migrations. One table per entity, each section
// table carrying a unique index on business_id so at most one record of
// each kind exists per business.
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.BusinessProfile{},
		&model.ContactSection{},
		&model.CategorySection{},
		&model.AddressSection{},
		&model.BankSection{},
		&model.DocumentSection{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
