package gormrepo

import (
	"context"
	"strings"
	"testing"
	"time"

	"sweetshop/internal/domain/entity"
	domainerrors "sweetshop/internal/domain/errors"
	"sweetshop/internal/domain/repository"
	"sweetshop/internal/errors"
	"sweetshop/internal/infra/persistence/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLite(":memory:", nil, nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func createUser(t *testing.T, repo repository.UserRepository, username, email string, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		Mobile:       "1234567890",
		Address:      "123 Test Street",
		Role:         role,
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func createProduct(t *testing.T, repo repository.ProductRepository, name, category string, price float64, quantity int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
		Img:      "assets/Images/" + name + ".jpg",
	}
	require.NoError(t, repo.Create(context.Background(), product))

	return product
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := createUser(t, repo, "testuser", "test@example.com", entity.RoleUser)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "testuser", byID.Username)
	assert.Equal(t, entity.RoleUser, byID.Role)

	byEmail, err := repo.FindByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := repo.FindByUsername(ctx, "testuser")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateDefaultsInvalidRoleToUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := createUser(t, repo, "norole", "norole@example.com", "")

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, found.Role)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createUser(t, repo, "testuser", "test@example.com", entity.RoleUser)

	err := repo.Create(context.Background(), &entity.User{
		Username:     "other",
		Email:        "test@example.com",
		PasswordHash: "hash",
		Mobile:       "1234567890",
		Address:      "123 Test Street",
		Role:         entity.RoleUser,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	err = repo.Create(context.Background(), &entity.User{
		Username:     "testuser",
		Email:        "other@example.com",
		PasswordHash: "hash",
		Mobile:       "1234567890",
		Address:      "123 Test Street",
		Role:         entity.RoleUser,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestProductRepository_ListNewestFirst(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	first := createProduct(t, repo, "Barfi", "Barfi", 50, 10)
	second := createProduct(t, repo, "Laddu", "Laddoo", 30, 5)
	third := createProduct(t, repo, "Jalebi", "Farsan", 40, 8)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, []uint{third.ID, second.ID, first.ID}, []uint{products[0].ID, products[1].ID, products[2].ID})
}

func TestProductRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))

	createProduct(t, repo, "Kaju Barfi", "Barfi", 120, 5)
	createProduct(t, repo, "Soan Papdi", "Barfi", 50, 10)
	createProduct(t, repo, "Mysorepak", "Barfi", 80, 8)
	createProduct(t, repo, "Motichur Laddu", "Laddoo", 30, 15)
	createProduct(t, repo, "Gulab Jamun", "Laddoo", 55, 12)

	name := "barfi"
	category := "Barfi"
	lowerCategory := "barfi"
	missing := "halwa"
	minPrice := 50.0
	maxPrice := 80.0

	tests := []struct {
		name   string
		filter entity.ProductFilter
		want   int
	}{
		{"no filters", entity.ProductFilter{}, 5},
		{"name is case-insensitive substring", entity.ProductFilter{Name: &name}, 1},
		{"name mismatch", entity.ProductFilter{Name: &missing}, 0},
		{"category exact", entity.ProductFilter{Category: &category}, 3},
		{"category is case-sensitive", entity.ProductFilter{Category: &lowerCategory}, 0},
		{"min price inclusive", entity.ProductFilter{MinPrice: &minPrice}, 4},
		{"price range inclusive", entity.ProductFilter{MinPrice: &minPrice, MaxPrice: &maxPrice}, 3},
		{"category and min price", entity.ProductFilter{Category: &category, MinPrice: &minPrice}, 3},
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, products, tt.want)

			// Same rows as filtering the full catalog in memory.
			var expected []uint
			for _, p := range all {
				if matchesFilter(tt.filter, p) {
					expected = append(expected, p.ID)
				}
			}
			var got []uint
			for _, p := range products {
				got = append(got, p.ID)
			}
			assert.Equal(t, expected, got)
		})
	}
}

// matchesFilter is the in-memory reading of a search filter.
func matchesFilter(f entity.ProductFilter, p *entity.Product) bool {
	if f.Name != nil && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(*f.Name)) {
		return false
	}
	if f.Category != nil && p.Category != *f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}

	return true
}

func TestProductRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))
	created := createProduct(t, repo, "Peda", "Laddoo", 35, 25)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Peda", found.Name)
	assert.Nil(t, found.Description)

	locked, err := repo.FindByIDForUpdate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, locked.ID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	_, err = repo.FindByIDForUpdate(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))
	created := createProduct(t, repo, "Ghevar", "Farsan", 65, 6)

	description := "Honeycomb-shaped sweet"
	created.Price = 70
	created.Quantity = 0
	created.Description = &description
	require.NoError(t, repo.Update(ctx, created))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 70.0, found.Price)
	assert.Equal(t, 0, found.Quantity)
	require.NotNil(t, found.Description)
	assert.Equal(t, description, *found.Description)
	assert.False(t, found.UpdatedAt.Before(found.CreatedAt))

	err = repo.Update(ctx, &entity.Product{ID: 999, Name: "Ghost", Price: 1, Img: "x"})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))
	created := createProduct(t, repo, "Rasgulla", "Laddoo", 45, 20)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err := repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), repository.ErrProductNotFound)
}

func TestProductRepository_AdjustStock(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(newTestDB(t))
	created := createProduct(t, repo, "Soan Papdi", "Barfi", 50, 10)

	stock, err := repo.AdjustStock(ctx, created.ID, -2)
	require.NoError(t, err)
	assert.Equal(t, 8, stock)

	stock, err = repo.AdjustStock(ctx, created.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 13, stock)

	_, err = repo.AdjustStock(ctx, created.ID, -14)
	assert.ErrorIs(t, err, repository.ErrStockConflict)

	stock, err = repo.AdjustStock(ctx, created.ID, -13)
	require.NoError(t, err)
	assert.Equal(t, 0, stock)

	_, err = repo.AdjustStock(ctx, 999, 1)
	assert.ErrorIs(t, err, repository.ErrStockConflict)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Quantity)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	product := createProduct(t, NewProductRepository(db), "Barfi", "Barfi", 50, 10)
	txManager := NewTransactionManager(db)
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewProductRepository().AdjustStock(ctx, product.ID, -3); err != nil {
			return err
		}
		if err := factory.NewPurchaseRepository().Create(ctx, &entity.Purchase{
			UserID: 1, ProductID: product.ID, Quantity: 3, TotalPrice: 150, PurchaseDate: time.Now(),
		}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	found, err := NewProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, found.Quantity)

	count, err := NewPurchaseRepository(db).CountByProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	called := false
	err = NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "TRANSACTION_FAILED", appErr.ErrorCode())
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestTransactionManager_Commit(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	product := createProduct(t, NewProductRepository(db), "Barfi", "Barfi", 50, 10)

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewProductRepository().AdjustStock(ctx, product.ID, 5); err != nil {
			return err
		}

		return factory.NewRestockRepository().Create(ctx, &entity.Restock{
			ProductID: product.ID, AdminID: 1, QuantityAdded: 5, RestockDate: time.Now(),
		})
	})
	require.NoError(t, err)

	found, err := NewProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, found.Quantity)

	count, err := NewRestockRepository(db).CountByProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	product := createProduct(t, NewProductRepository(db), "Barfi", "Barfi", 50, 10)

	assert.Panics(t, func() {
		_ = NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
			if _, err := factory.NewProductRepository().AdjustStock(ctx, product.ID, -1); err != nil {
				return err
			}
			panic("unexpected")
		})
	})

	found, err := NewProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, found.Quantity)
}

func TestPurchaseRepository_ListByUserWithProduct(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	products := NewProductRepository(db)
	purchases := NewPurchaseRepository(db)
	users := NewUserRepository(db)

	buyer := createUser(t, users, "buyer", "buyer@example.com", entity.RoleUser)
	other := createUser(t, users, "other", "other@example.com", entity.RoleUser)
	barfi := createProduct(t, products, "Barfi", "Barfi", 50, 10)
	jalebi := createProduct(t, products, "Jalebi", "Farsan", 40, 18)

	base := time.Now().Add(-time.Hour)
	for i, p := range []*entity.Purchase{
		{UserID: buyer.ID, ProductID: barfi.ID, Quantity: 2, TotalPrice: 100, PurchaseDate: base},
		{UserID: buyer.ID, ProductID: jalebi.ID, Quantity: 1, TotalPrice: 40, PurchaseDate: base.Add(time.Minute)},
		{UserID: other.ID, ProductID: barfi.ID, Quantity: 1, TotalPrice: 50, PurchaseDate: base.Add(2 * time.Minute)},
	} {
		require.NoError(t, purchases.Create(ctx, p), "purchase %d", i)
	}

	history, err := purchases.ListByUserWithProduct(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Jalebi", history[0].ProductName)
	assert.Equal(t, "Farsan", history[0].Category)
	assert.True(t, history[0].ProductAvailable)
	assert.Equal(t, "Barfi", history[1].ProductName)
	assert.Equal(t, 100.0, history[1].TotalPrice)

	count, err := purchases.CountByProduct(ctx, barfi.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Deleting the sweet keeps the purchase, flagged as unavailable.
	require.NoError(t, products.Delete(ctx, barfi.ID))

	history, err = purchases.ListByUserWithProduct(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.False(t, history[1].ProductAvailable)
	assert.Empty(t, history[1].ProductName)
	assert.Equal(t, barfi.ID, history[1].ProductID)

	empty, err := purchases.ListByUserWithProduct(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRestockRepository_ListWithDetails(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	products := NewProductRepository(db)
	restocks := NewRestockRepository(db)

	admin := createUser(t, NewUserRepository(db), "Admin", "admin@sweetshop.com", entity.RoleAdmin)
	barfi := createProduct(t, products, "Barfi", "Barfi", 50, 10)
	peda := createProduct(t, products, "Peda", "Laddoo", 35, 25)

	base := time.Now().Add(-time.Hour)
	require.NoError(t, restocks.Create(ctx, &entity.Restock{ProductID: barfi.ID, AdminID: admin.ID, QuantityAdded: 5, RestockDate: base}))
	require.NoError(t, restocks.Create(ctx, &entity.Restock{ProductID: peda.ID, AdminID: admin.ID, QuantityAdded: 3, RestockDate: base.Add(time.Minute)}))

	require.NoError(t, products.Delete(ctx, peda.ID))

	history, err := restocks.ListWithDetails(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, peda.ID, history[0].ProductID)
	assert.False(t, history[0].ProductAvailable)
	assert.Equal(t, "Admin", history[0].AdminName)

	assert.Equal(t, "Barfi", history[1].ProductName)
	assert.True(t, history[1].ProductAvailable)
	assert.Equal(t, 5, history[1].QuantityAdded)
	assert.Equal(t, admin.ID, history[1].AdminID)
}
