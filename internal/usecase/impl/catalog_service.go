package impl

import (
	"context"
	"log/slog"

	deliverycontext "sweetshop/internal/delivery/context"
	"sweetshop/internal/domain/entity"
	domainerrors "sweetshop/internal/domain/errors"
	"sweetshop/internal/domain/repository"
	"sweetshop/internal/domain/service"
	"sweetshop/internal/errors"
	"sweetshop/internal/usecase"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	restockRepo  repository.RestockRepository
	qrCodeSvc    service.QRCodeService
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	PurchaseRepo repository.PurchaseRepository
	RestockRepo  repository.RestockRepository
	QRCodeSvc    service.QRCodeService
	Logger       *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		purchaseRepo: params.PurchaseRepo,
		restockRepo:  params.RestockRepo,
		qrCodeSvc:    params.QRCodeSvc,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sweets")
	}

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err, "failed to find sweet")
	}

	return product, nil
}

func (srv *catalogService) SearchProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.productRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search sweets")
	}

	return products, nil
}

// CreateProduct adds a sweet to the catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, actor *entity.User, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Description: input.Description,
		Img:         input.Img,
	}
	if err := product.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, mapProductError(err, "failed to create sweet")
	}

	srv.log(ctx).Info("Sweet created", slog.Any("sweetID", product.ID), slog.Any("adminID", actor.ID))

	return product, nil
}

// UpdateProduct locks the row, merges the patch and writes it back in one transaction.
func (srv *catalogService) UpdateProduct(ctx context.Context, actor *entity.User, id uint, patch entity.ProductPatch) (*entity.Product, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapProductError(err, "failed to find sweet")
		}

		if patch.IsEmpty() {
			updated = product

			return nil
		}

		patch.Apply(product)
		if err := product.Validate(); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return mapProductError(err, "failed to update sweet")
		}

		updated = product

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute sweet update transaction")
	}

	srv.log(ctx).Info("Sweet updated", slog.Any("sweetID", id), slog.Any("adminID", actor.ID))

	return updated, nil
}

// DeleteProduct hard-deletes a sweet. Its purchase and restock history is kept
// and reported as no longer available.
func (srv *catalogService) DeleteProduct(ctx context.Context, actor *entity.User, id uint) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	var orphanedPurchases, orphanedRestocks int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		if _, err := productRepo.FindByIDForUpdate(ctx, id); err != nil {
			return mapProductError(err, "failed to find sweet")
		}

		var err error
		orphanedPurchases, err = repoFactory.NewPurchaseRepository().CountByProduct(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count purchases")
		}

		orphanedRestocks, err = repoFactory.NewRestockRepository().CountByProduct(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count restocks")
		}

		if err := productRepo.Delete(ctx, id); err != nil {
			return mapProductError(err, "failed to delete sweet")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute sweet delete transaction")
	}

	logger := srv.log(ctx).With(slog.Any("sweetID", id), slog.Any("adminID", actor.ID))
	if orphanedPurchases > 0 || orphanedRestocks > 0 {
		logger.Warn("Sweet deleted with history still referencing it",
			slog.Int64("orphanedPurchases", orphanedPurchases),
			slog.Int64("orphanedRestocks", orphanedRestocks),
		)
	} else {
		logger.Info("Sweet deleted")
	}

	return nil
}

func (srv *catalogService) ProductQRCode(ctx context.Context, id uint) ([]byte, error) {
	if _, err := srv.productRepo.FindByID(ctx, id); err != nil {
		return nil, mapProductError(err, "failed to find sweet")
	}

	png, err := srv.qrCodeSvc.GenerateProductQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate sweet QR code")
	}

	return png, nil
}

func (srv *catalogService) ScanProduct(ctx context.Context, qrData string) (*entity.Product, error) {
	id, err := srv.qrCodeSvc.ParseProductQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unrecognised shelf label")
	}

	return srv.GetProduct(ctx, id)
}
