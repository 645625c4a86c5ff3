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

// restockRepository implements the repository.RestockRepository interface.
type restockRepository struct {
	db *gorm.DB
}

// NewRestockRepository is the constructor for restockRepository.
func NewRestockRepository(db *gorm.DB) repository.RestockRepository {
	return &restockRepository{
		db: db,
	}
}

// Create persists a restock audit entry.
func (repo *restockRepository) Create(ctx context.Context, restock *entity.Restock) error {
	restockM := &model.RestockModel{
		SweetID:       restock.ProductID,
		AdminID:       restock.AdminID,
		QuantityAdded: restock.QuantityAdded,
		RestockDate:   restock.RestockDate,
	}

	if err := repo.db.WithContext(ctx).Create(restockM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create restock entry")
	}

	restock.ID = restockM.ID
	restock.RestockDate = restockM.RestockDate

	return nil
}

// ListWithDetails retrieves every restock with the sweet name and the acting admin's username.
func (repo *restockRepository) ListWithDetails(ctx context.Context) ([]*entity.RestockWithDetails, error) {
	var rows []*model.RestockRow

	if err := repo.db.WithContext(ctx).
		Table(model.RestockModel{}.TableName()).
		Select("restock_history.*, sweets.name AS sweet_name, users.username AS admin_name").
		Joins("LEFT JOIN sweets ON sweets.id = restock_history.sweet_id").
		Joins("LEFT JOIN users ON users.id = restock_history.admin_id").
		Order("restock_history.restock_date DESC, restock_history.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restock history")
	}

	history := make([]*entity.RestockWithDetails, 0, len(rows))
	for _, row := range rows {
		history = append(history, &entity.RestockWithDetails{
			Restock: entity.Restock{
				ID:            row.ID,
				ProductID:     row.SweetID,
				AdminID:       row.AdminID,
				QuantityAdded: row.QuantityAdded,
				RestockDate:   row.RestockDate,
			},
			ProductName:      derefString(row.SweetName),
			AdminName:        derefString(row.AdminName),
			ProductAvailable: row.SweetName != nil,
		})
	}

	return history, nil
}

// CountByProduct counts the restock entries referencing a sweet.
func (repo *restockRepository) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RestockModel{}).
		Where("sweet_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count restock entries")
	}

	return count, nil
}
