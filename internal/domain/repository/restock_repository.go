package repository

import (
	"context"

	"sweetshop/internal/domain/entity"
)

// RestockRepository persists the restock audit trail.
type RestockRepository interface {
	Create(ctx context.Context, restock *entity.Restock) error

	// ListWithDetails returns every restock newest first, joined with the sweet and the admin.
	ListWithDetails(ctx context.Context) ([]*entity.RestockWithDetails, error)

	CountByProduct(ctx context.Context, productID uint) (int64, error)
}
