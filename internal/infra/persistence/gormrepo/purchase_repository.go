package gormrepo

import (
	"context"

	"sweetshop/internal/domain/entity"
	domainerrors "sweetshop/internal/domain/errors"
	"sweetshop/internal/domain/repository"
	"sweetshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create persists a purchase record.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID
	purchase.PurchaseDate = purchaseM.PurchaseDate

	return nil
}

// ListByUserWithProduct retrieves the user's purchases joined with the current sweet row.
func (repo *purchaseRepository) ListByUserWithProduct(ctx context.Context, userID uint) ([]*entity.PurchaseWithProduct, error) {
	var rows []*model.PurchaseRow

	if err := repo.db.WithContext(ctx).
		Table(model.PurchaseModel{}.TableName()).
		Select("purchases.*, sweets.name AS sweet_name, sweets.category AS sweet_category, sweets.img AS sweet_img").
		Joins("LEFT JOIN sweets ON sweets.id = purchases.sweet_id").
		Where("purchases.user_id = ?", userID).
		Order("purchases.purchase_date DESC, purchases.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchase history")
	}

	history := make([]*entity.PurchaseWithProduct, 0, len(rows))
	for _, row := range rows {
		history = append(history, toPurchaseWithProductDomain(row))
	}

	return history, nil
}

// CountByProduct counts the purchases referencing a sweet.
func (repo *purchaseRepository) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("sweet_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count purchases")
	}

	return count, nil
}

// --- Mapper Functions ---

func toPurchaseDomain(data *model.PurchaseModel) entity.Purchase {
	return entity.Purchase{
		ID:           data.ID,
		UserID:       data.UserID,
		ProductID:    data.SweetID,
		Quantity:     data.Quantity,
		TotalPrice:   data.TotalPrice,
		PurchaseDate: data.PurchaseDate,
	}
}

func toPurchaseWithProductDomain(row *model.PurchaseRow) *entity.PurchaseWithProduct {
	return &entity.PurchaseWithProduct{
		Purchase:         toPurchaseDomain(&row.PurchaseModel),
		ProductName:      derefString(row.SweetName),
		Category:         derefString(row.SweetCategory),
		Img:              derefString(row.SweetImg),
		ProductAvailable: row.SweetName != nil,
	}
}

func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	return &model.PurchaseModel{
		ID:           data.ID,
		UserID:       data.UserID,
		SweetID:      data.ProductID,
		Quantity:     data.Quantity,
		TotalPrice:   data.TotalPrice,
		PurchaseDate: data.PurchaseDate,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
