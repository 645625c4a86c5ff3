package gormrepo

import (
	"context"
	"time"

	"sweetshop/internal/domain/constants"
	"sweetshop/internal/domain/entity"
	domainerrors "sweetshop/internal/domain/errors"
	"sweetshop/internal/domain/repository"
	"sweetshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const newestFirst = "created_at DESC, id DESC"

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// List retrieves the whole catalog, newest first.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var sweetModels []*model.SweetModel

	if err := repo.db.WithContext(ctx).
		Order(newestFirst).
		Find(&sweetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sweets")
	}

	return toProductDomains(sweetModels), nil
}

// Search retrieves the sweets matching every present filter, newest first.
func (repo *productRepository) Search(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.SweetModel{})

	if filter.Name != nil {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+*filter.Name+"%")
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var sweetModels []*model.SweetModel
	if err := query.Order(newestFirst).Find(&sweetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search sweets")
	}

	return toProductDomains(sweetModels), nil
}

// FindByID retrieves a sweet by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a sweet and locks its row for the rest of the transaction.
// SQLite has no row locks; its single-connection pool already serialises writers.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id uint) (*entity.Product, error) {
	db := repo.db.WithContext(ctx)
	if db.Dialector.Name() == constants.DatabaseDriverPostgres {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	return repo.findByID(db, id)
}

func (repo *productRepository) findByID(db *gorm.DB, id uint) (*entity.Product, error) {
	var sweetM model.SweetModel

	if err := db.Where("id = ?", id).First(&sweetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find sweet by ID")
	}

	return toProductDomain(&sweetM), nil
}

// Create persists a new sweet and fills in its generated ID and timestamps.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	sweetM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(sweetM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return entity.ErrNegativeProductQuantity
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sweet")
	}

	product.ID = sweetM.ID
	product.CreatedAt = sweetM.CreatedAt
	product.UpdatedAt = sweetM.UpdatedAt

	return nil
}

// Update writes every mutable column of the sweet and refreshes updated_at.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.SweetModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"category":    product.Category,
			"price":       product.Price,
			"quantity":    product.Quantity,
			"description": product.Description,
			"img":         product.Img,
			"updated_at":  now,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return entity.ErrNegativeProductQuantity
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update sweet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = now

	return nil
}

// Delete hard-deletes a sweet. Purchases and restocks that reference it are kept.
func (repo *productRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SweetModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete sweet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AdjustStock applies delta in a single conditional UPDATE so that concurrent
// writers can never push the quantity below zero.
func (repo *productRepository) AdjustStock(ctx context.Context, id uint, delta int) (int, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SweetModel{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust stock")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrStockConflict
	}

	var sweetM model.SweetModel
	if err := repo.db.WithContext(ctx).
		Select("quantity").
		Where("id = ?", id).
		First(&sweetM).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read adjusted stock")
	}

	return sweetM.Quantity, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM SweetModel to a domain Product entity.
func toProductDomain(data *model.SweetModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Price:       data.Price,
		Quantity:    data.Quantity,
		Description: data.Description,
		Img:         data.Img,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomains(data []*model.SweetModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, sweetM := range data {
		products = append(products, toProductDomain(sweetM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM SweetModel for persistence.
func fromProductDomain(data *entity.Product) *model.SweetModel {
	if data == nil {
		return nil
	}

	return &model.SweetModel{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Price:       data.Price,
		Quantity:    data.Quantity,
		Description: data.Description,
		Img:         data.Img,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
