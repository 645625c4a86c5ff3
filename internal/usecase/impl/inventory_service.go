package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sweetshop/internal/delivery/context"
	"sweetshop/internal/domain/entity"
	domainerrors "sweetshop/internal/domain/errors"
	"sweetshop/internal/domain/repository"
	"sweetshop/internal/domain/service"
	"sweetshop/internal/errors"
	"sweetshop/internal/usecase"

	"go.uber.org/fx"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Purchase sells quantity units of a sweet to the buyer. The stock check, the
// decrement and the purchase record commit together or not at all.
func (srv *inventoryService) Purchase(ctx context.Context, buyer *entity.User, productID uint, quantity int) (*entity.PurchaseResult, error) {
	if buyer == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be greater than 0")
	}

	var result *entity.PurchaseResult
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByIDForUpdate(ctx, productID)
		if err != nil {
			return mapProductError(err, "failed to find sweet")
		}

		if product.Quantity < quantity {
			return domainerrors.InsufficientStock(product.Quantity)
		}

		remaining, err := productRepo.AdjustStock(ctx, product.ID, -quantity)
		if errors.Is(err, repository.ErrStockConflict) {
			return domainerrors.InsufficientStock(product.Quantity)
		}
		if err != nil {
			return mapProductError(err, "failed to decrement stock")
		}

		purchase := entity.NewPurchase(buyer.ID, product, quantity, srv.now())
		if err := repoFactory.NewPurchaseRepository().Create(ctx, purchase); err != nil {
			return errors.Wrap(err, "failed to record purchase")
		}

		result = &entity.PurchaseResult{
			ProductName:       product.Name,
			QuantityPurchased: quantity,
			TotalPrice:        purchase.TotalPrice,
			RemainingStock:    remaining,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute purchase transaction")
	}

	srv.log(ctx).Info("Purchase completed",
		slog.Any("sweetID", productID),
		slog.Any("userID", buyer.ID),
		slog.Int("quantity", quantity),
		slog.Int("remainingStock", result.RemainingStock),
	)

	srv.publish(ctx, &service.InventoryEvent{
		Type:       service.InventoryEventPurchase,
		SweetID:    productID,
		SweetName:  result.ProductName,
		Quantity:   quantity,
		StockLevel: result.RemainingStock,
		ActorID:    buyer.ID,
	})

	return result, nil
}

// Restock adds quantity units to a sweet and writes the restock audit entry.
func (srv *inventoryService) Restock(ctx context.Context, admin *entity.User, productID uint, quantity int) (*entity.RestockResult, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be greater than 0")
	}

	var result *entity.RestockResult
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByIDForUpdate(ctx, productID)
		if err != nil {
			return mapProductError(err, "failed to find sweet")
		}

		newStock, err := productRepo.AdjustStock(ctx, product.ID, quantity)
		if err != nil {
			return mapProductError(err, "failed to increment stock")
		}

		restock := &entity.Restock{
			ProductID:     product.ID,
			AdminID:       admin.ID,
			QuantityAdded: quantity,
			RestockDate:   srv.now(),
		}
		if err := repoFactory.NewRestockRepository().Create(ctx, restock); err != nil {
			return errors.Wrap(err, "failed to record restock")
		}

		result = &entity.RestockResult{
			ProductName:   product.Name,
			QuantityAdded: quantity,
			NewStock:      newStock,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute restock transaction")
	}

	srv.log(ctx).Info("Restock completed",
		slog.Any("sweetID", productID),
		slog.Any("adminID", admin.ID),
		slog.Int("quantity", quantity),
		slog.Int("newStock", result.NewStock),
	)

	srv.publish(ctx, &service.InventoryEvent{
		Type:       service.InventoryEventRestock,
		SweetID:    productID,
		SweetName:  result.ProductName,
		Quantity:   quantity,
		StockLevel: result.NewStock,
		ActorID:    admin.ID,
	})

	return result, nil
}

// publish runs after commit; a failure is logged and never undoes the mutation.
func (srv *inventoryService) publish(ctx context.Context, event *service.InventoryEvent) {
	if srv.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = srv.now()

	if err := srv.publisher.PublishInventoryEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish inventory event",
			slog.String("type", event.Type),
			slog.Any("sweetID", event.SweetID),
			slog.Any("error", err),
		)
	}
}
