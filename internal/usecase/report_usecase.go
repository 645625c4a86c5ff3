package usecase

import (
	"context"

	"sweetshop/internal/domain/entity"
)

// ReportUsecase defines the history views over purchases and restocks.
type ReportUsecase interface {
	// PurchaseHistory lists the user's own purchases, newest first.
	PurchaseHistory(ctx context.Context, user *entity.User) ([]*entity.PurchaseWithProduct, error)
	// RestockHistory lists every restock in the shop, newest first. Admin only.
	RestockHistory(ctx context.Context, admin *entity.User) ([]*entity.RestockWithDetails, error)
}
