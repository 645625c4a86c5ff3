package impl

import (
	"context"

	"sweetshop/internal/domain/entity"
	domainerrors "sweetshop/internal/domain/errors"
	"sweetshop/internal/domain/repository"
	"sweetshop/internal/errors"
	"sweetshop/internal/usecase"
)

type reportService struct {
	purchaseRepo repository.PurchaseRepository
	restockRepo  repository.RestockRepository
}

// NewReportService creates a new report service.
func NewReportService(purchaseRepo repository.PurchaseRepository, restockRepo repository.RestockRepository) usecase.ReportUsecase {
	return &reportService{
		purchaseRepo: purchaseRepo,
		restockRepo:  restockRepo,
	}
}

func (srv *reportService) PurchaseHistory(ctx context.Context, user *entity.User) ([]*entity.PurchaseWithProduct, error) {
	if user == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	purchases, err := srv.purchaseRepo.ListByUserWithProduct(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchase history")
	}

	return purchases, nil
}

func (srv *reportService) RestockHistory(ctx context.Context, admin *entity.User) ([]*entity.RestockWithDetails, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}

	restocks, err := srv.restockRepo.ListWithDetails(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restock history")
	}

	return restocks, nil
}
