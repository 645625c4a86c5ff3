package database

import (
	"context"

	"sweetshop/internal/errors"
	"sweetshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the users, sweets, purchases and restock_history tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
