package entity

import (
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// MinProductNameLength is the shortest accepted sweet name.
const MinProductNameLength = 2

var (
	// ErrInvalidProductName is returned when a name is shorter than MinProductNameLength.
	ErrInvalidProductName = errors.New("name must be at least 2 characters")
	// ErrInvalidProductPrice is returned for a price that is not strictly positive.
	ErrInvalidProductPrice = errors.New("price must be greater than 0")
	// ErrNegativeProductQuantity is returned when stock on hand would be negative.
	ErrNegativeProductQuantity = errors.New("quantity must be greater than or equal to 0")
)

// Product is a catalog item ("sweet") with a unit price and stock on hand.
type Product struct {
	ID          uint
	Name        string
	Category    string
	Price       float64
	Quantity    int
	Description *string
	Img         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the invariants every persisted product must satisfy.
func (p *Product) Validate() error {
	if utf8.RuneCountInString(p.Name) < MinProductNameLength {
		return ErrInvalidProductName
	}
	if p.Price <= 0 {
		return ErrInvalidProductPrice
	}
	if p.Quantity < 0 {
		return ErrNegativeProductQuantity
	}

	return nil
}

// ProductPatch carries the fields of a partial update. A nil field is left untouched.
type ProductPatch struct {
	Name        *string
	Category    *string
	Price       *float64
	Quantity    *int
	Description *string
	Img         *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil &&
		p.Quantity == nil && p.Description == nil && p.Img == nil
}

// Apply copies every present field onto the product.
func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Quantity != nil {
		product.Quantity = *p.Quantity
	}
	if p.Description != nil {
		description := *p.Description
		product.Description = &description
	}
	if p.Img != nil {
		product.Img = *p.Img
	}
}

// ProductFilter holds the optional, conjunctive search criteria for the catalog.
type ProductFilter struct {
	Name     *string  // Case-insensitive substring of the name.
	Category *string  // Exact category match.
	MinPrice *float64 // Inclusive lower price bound.
	MaxPrice *float64 // Inclusive upper price bound.
}
