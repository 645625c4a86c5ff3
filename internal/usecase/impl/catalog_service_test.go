package impl

import (
	"context"
	"testing"

	"sweetshop/internal/domain/entity"
	domainerrors "sweetshop/internal/domain/errors"
	"sweetshop/internal/domain/repository"
	mockRepo "sweetshop/internal/mocks/repository"
	mockSvc "sweetshop/internal/mocks/service"
	"sweetshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	productRepo  *mockRepo.MockProductRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	restockRepo  *mockRepo.MockRestockRepository
	qrCodeSvc    *mockSvc.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	restockRepo := mockRepo.NewMockRestockRepository(t)
	qrCodeSvc := mockSvc.NewMockQRCodeService(t)

	service := NewCatalogService(CatalogServiceParams{
		TxManager:    txManager,
		ProductRepo:  productRepo,
		PurchaseRepo: purchaseRepo,
		RestockRepo:  restockRepo,
		QRCodeSvc:    qrCodeSvc,
		Logger:       newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:      service,
		txManager:    txManager,
		repoFactory:  repoFactory,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		restockRepo:  restockRepo,
		qrCodeSvc:    qrCodeSvc,
	}
}

func newCreateProductInput() *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		Name:     "Rasgulla",
		Category: "Bengali",
		Price:    25,
		Quantity: 40,
		Img:      "rasgulla.png",
	}
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		fx := createTestCatalogService(t)
		product := testProduct()

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		got, err := fx.service.GetProduct(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestCatalogService(t)

		fx.productRepo.EXPECT().FindByID(ctx, uint(42)).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.GetProduct(ctx, 42)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestCatalogService_SearchProducts_PassesFilter(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	category := "Barfi"
	minPrice := 50.0
	filter := entity.ProductFilter{Category: &category, MinPrice: &minPrice}

	fx.productRepo.EXPECT().Search(ctx, filter).Return([]*entity.Product{testProduct()}, nil)

	products, err := fx.service.SearchProducts(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	input := newCreateProductInput()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = 11
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, testAdmin(), input)
	require.NoError(t, err)
	assert.Equal(t, uint(11), product.ID)
	assert.Equal(t, input.Name, product.Name)
	assert.Equal(t, input.Quantity, product.Quantity)
	assert.Nil(t, product.Description)
}

func TestCatalogService_CreateProduct_RequiresAdmin(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateProduct(context.Background(), testCustomer(), newCreateProductInput())
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.CreateProductInput)
	}{
		{name: "short name", mutate: func(in *usecase.CreateProductInput) { in.Name = "R" }},
		{name: "zero price", mutate: func(in *usecase.CreateProductInput) { in.Price = 0 }},
		{name: "negative quantity", mutate: func(in *usecase.CreateProductInput) { in.Quantity = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			input := newCreateProductInput()
			tt.mutate(input)

			_, err := fx.service.CreateProduct(context.Background(), testAdmin(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogService_UpdateProduct_AppliesPresentFields(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := testProduct()
	newPrice := 60.0

	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Price == newPrice && p.Name == "Kaju Katli" && p.Quantity == 10
		})).
		Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, testAdmin(), product.ID, entity.ProductPatch{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, newPrice, updated.Price)
	assert.Equal(t, "Barfi", updated.Category)
}

func TestCatalogService_UpdateProduct_EmptyPatchIsNoop(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := testProduct()

	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, product.ID).Return(product, nil)

	updated, err := fx.service.UpdateProduct(ctx, testAdmin(), product.ID, entity.ProductPatch{})
	require.NoError(t, err)
	assert.Equal(t, product, updated)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	name := "Peda"

	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, uint(99)).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, testAdmin(), 99, entity.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_UpdateProduct_RejectsInvalidPatch(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := testProduct()
	negative := -3

	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, product.ID).Return(product, nil)

	_, err := fx.service.UpdateProduct(ctx, testAdmin(), product.ID, entity.ProductPatch{Quantity: &negative})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UpdateProduct_RequiresAdmin(t *testing.T) {
	fx := createTestCatalogService(t)
	name := "Peda"

	_, err := fx.service.UpdateProduct(context.Background(), testCustomer(), 1, entity.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestCatalogService_DeleteProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	product := testProduct()

	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.repoFactory.EXPECT().NewPurchaseRepository().Return(fx.purchaseRepo)
	fx.repoFactory.EXPECT().NewRestockRepository().Return(fx.restockRepo)
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, product.ID).Return(product, nil)
	fx.purchaseRepo.EXPECT().CountByProduct(ctx, product.ID).Return(int64(3), nil)
	fx.restockRepo.EXPECT().CountByProduct(ctx, product.ID).Return(int64(1), nil)
	fx.productRepo.EXPECT().Delete(ctx, product.ID).Return(nil)

	err := fx.service.DeleteProduct(ctx, testAdmin(), product.ID)
	require.NoError(t, err)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, uint(99)).Return(nil, repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, testAdmin(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DeleteProduct_RequiresAdmin(t *testing.T) {
	fx := createTestCatalogService(t)

	err := fx.service.DeleteProduct(context.Background(), testCustomer(), 1)
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestCatalogService_ProductQRCode(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the label of an existing sweet", func(t *testing.T) {
		fx := createTestCatalogService(t)
		product := testProduct()

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.qrCodeSvc.EXPECT().GenerateProductQR(product.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.ProductQRCode(ctx, product.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})

	t.Run("missing sweet", func(t *testing.T) {
		fx := createTestCatalogService(t)

		fx.productRepo.EXPECT().FindByID(ctx, uint(5)).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.ProductQRCode(ctx, 5)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("encoder failure", func(t *testing.T) {
		fx := createTestCatalogService(t)
		product := testProduct()

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.qrCodeSvc.EXPECT().GenerateProductQR(product.ID).Return(nil, errors.New("content too long"))

		_, err := fx.service.ProductQRCode(ctx, product.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content too long")
	})
}

func TestCatalogService_ScanProduct(t *testing.T) {
	ctx := context.Background()
	label := `{"sweet_id":1,"type":"sweet"}`

	t.Run("resolves the scanned sweet", func(t *testing.T) {
		fx := createTestCatalogService(t)
		product := testProduct()

		fx.qrCodeSvc.EXPECT().ParseProductQR(label).Return(product.ID, nil)
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		got, err := fx.service.ScanProduct(ctx, label)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("unreadable label", func(t *testing.T) {
		fx := createTestCatalogService(t)

		fx.qrCodeSvc.EXPECT().ParseProductQR("garbage").Return(uint(0), errors.New("failed to unmarshal QR code data"))

		_, err := fx.service.ScanProduct(ctx, "garbage")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("label of a deleted sweet", func(t *testing.T) {
		fx := createTestCatalogService(t)

		fx.qrCodeSvc.EXPECT().ParseProductQR(label).Return(uint(1), nil)
		fx.productRepo.EXPECT().FindByID(ctx, uint(1)).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.ScanProduct(ctx, label)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}
