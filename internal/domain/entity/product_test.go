package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		wantErr error
	}{
		{
			name:    "valid product",
			product: Product{Name: "Kaju Katli", Price: 50, Quantity: 0},
		},
		{
			name:    "name too short",
			product: Product{Name: "K", Price: 50},
			wantErr: ErrInvalidProductName,
		},
		{
			name:    "two multibyte runes are enough",
			product: Product{Name: "लड", Price: 10},
		},
		{
			name:    "zero price",
			product: Product{Name: "Rasgulla", Price: 0},
			wantErr: ErrInvalidProductPrice,
		},
		{
			name:    "negative quantity",
			product: Product{Name: "Rasgulla", Price: 20, Quantity: -1},
			wantErr: ErrNegativeProductQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductPatch_Apply(t *testing.T) {
	product := &Product{ID: 1, Name: "Kaju Katli", Category: "Barfi", Price: 50, Quantity: 10, Img: "kaju.png"}

	patch := ProductPatch{Price: ptr(60.0), Quantity: ptr(15), Description: ptr("Cashew fudge")}
	assert.False(t, patch.IsEmpty())

	patch.Apply(product)

	assert.Equal(t, "Kaju Katli", product.Name)
	assert.Equal(t, "Barfi", product.Category)
	assert.Equal(t, 60.0, product.Price)
	assert.Equal(t, 15, product.Quantity)
	assert.Equal(t, "kaju.png", product.Img)
	if assert.NotNil(t, product.Description) {
		assert.Equal(t, "Cashew fudge", *product.Description)
	}

	// The stored description must not alias the patch.
	*patch.Description = "changed"
	assert.Equal(t, "Cashew fudge", *product.Description)
}

func TestProductPatch_IsEmpty(t *testing.T) {
	assert.True(t, ProductPatch{}.IsEmpty())
	assert.False(t, ProductPatch{Img: ptr("x.png")}.IsEmpty())
}
