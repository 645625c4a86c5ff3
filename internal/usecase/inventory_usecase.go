package usecase

import (
	"context"

	"sweetshop/internal/domain/entity"
)

// InventoryUsecase defines the stock mutations. Each one changes the stock on
// hand and writes its history record in a single transaction.
type InventoryUsecase interface {
	Purchase(ctx context.Context, buyer *entity.User, productID uint, quantity int) (*entity.PurchaseResult, error)
	Restock(ctx context.Context, admin *entity.User, productID uint, quantity int) (*entity.RestockResult, error)
}
