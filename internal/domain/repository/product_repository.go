package repository

import (
	"context"
	"errors"

	"sweetshop/internal/domain/entity"
)

var (
	// ErrProductNotFound is returned when no sweet has the requested ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrStockConflict is returned by AdjustStock when applying the delta would leave
	// the stock negative, or the row vanished between read and write.
	ErrStockConflict = errors.New("stock conflict")
)

// ProductRepository defines persistence for the sweet catalog.
// List and Search return rows newest first.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)

	// Search applies every present filter conjunctively.
	Search(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// FindByIDForUpdate reads the product and locks its row until the enclosing
	// transaction ends, where the database supports row locks.
	FindByIDForUpdate(ctx context.Context, id uint) (*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error

	// Update saves every mutable field and refreshes UpdatedAt.
	Update(ctx context.Context, product *entity.Product) error

	// Delete hard-deletes the product. History rows referencing it are left in place.
	Delete(ctx context.Context, id uint) error

	// AdjustStock adds delta (which may be negative) to the stock on hand and
	// returns the resulting quantity. It never lets the stock drop below zero.
	AdjustStock(ctx context.Context, id uint, delta int) (int, error)
}
