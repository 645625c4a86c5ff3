package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records a completed sale. It is immutable once created and is
// written in the same transaction as the matching stock decrement.
type Purchase struct {
	ID           uint
	UserID       uint
	ProductID    uint
	Quantity     int
	TotalPrice   float64
	PurchaseDate time.Time
}

// NewPurchase prices a purchase of quantity units at the product's current unit price.
func NewPurchase(userID uint, product *Product, quantity int, at time.Time) *Purchase {
	return &Purchase{
		UserID:       userID,
		ProductID:    product.ID,
		Quantity:     quantity,
		TotalPrice:   TotalPrice(product.Price, quantity),
		PurchaseDate: at,
	}
}

// TotalPrice returns unitPrice × quantity rounded to two decimal places.
func TotalPrice(unitPrice float64, quantity int) float64 {
	return decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}

// PurchaseResult summarises a successful purchase.
type PurchaseResult struct {
	ProductName       string
	QuantityPurchased int
	TotalPrice        float64
	RemainingStock    int
}

// PurchaseWithProduct is a purchase joined with the current catalog row.
// ProductAvailable is false when the sweet has since been deleted.
type PurchaseWithProduct struct {
	Purchase

	ProductName      string
	Category         string
	Img              string
	ProductAvailable bool
}
