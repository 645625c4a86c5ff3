package database

import (
	"context"
	"log/slog"

	"sweetshop/config"
	"sweetshop/internal/domain/service"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// BootstrapParams defines the dependencies of Bootstrap
type BootstrapParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Hasher service.PasswordHasher
}

// Bootstrap migrates the schema and seeds default data when the application starts.
func Bootstrap(params BootstrapParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := Migrate(ctx, params.DB); err != nil {
				return err
			}

			if params.Config.Seed != nil && !params.Config.Seed.Enabled {
				params.Logger.Info("Seeding disabled")

				return nil
			}

			return Seed(ctx, params.DB, params.Hasher, params.Config.Seed, params.Logger)
		},
	})
}
