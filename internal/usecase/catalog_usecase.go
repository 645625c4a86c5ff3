package usecase

import (
	"context"

	"sweetshop/internal/domain/entity"
)

// CreateProductInput defines the fields of a new sweet.
type CreateProductInput struct {
	Name        string
	Category    string
	Price       float64
	Quantity    int
	Description *string
	Img         string
}

// CatalogUsecase defines read access to the sweet catalog for everyone and
// write access for admins.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)
	SearchProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, actor *entity.User, input *CreateProductInput) (*entity.Product, error)
	// UpdateProduct applies only the fields present in the patch. An empty patch
	// returns the current state unchanged.
	UpdateProduct(ctx context.Context, actor *entity.User, id uint, patch entity.ProductPatch) (*entity.Product, error)
	DeleteProduct(ctx context.Context, actor *entity.User, id uint) error
	// ProductQRCode renders the PNG shelf label of an existing sweet.
	ProductQRCode(ctx context.Context, id uint) ([]byte, error)
	// ScanProduct resolves the payload of a scanned shelf label to its sweet.
	ScanProduct(ctx context.Context, qrData string) (*entity.Product, error)
}
