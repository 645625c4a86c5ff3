package repository

import (
	"context"

	"sweetshop/internal/domain/entity"
)

// PurchaseRepository persists completed sales.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error

	// ListByUserWithProduct returns the user's purchases newest first, joined with the
	// current catalog row. Purchases of deleted sweets are kept and flagged unavailable.
	ListByUserWithProduct(ctx context.Context, userID uint) ([]*entity.PurchaseWithProduct, error)

	// CountByProduct counts the purchases that reference the given sweet.
	CountByProduct(ctx context.Context, productID uint) (int64, error)
}
