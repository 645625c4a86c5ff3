package entity

import "time"

// Restock is the audit entry of a stock increase performed by an admin.
type Restock struct {
	ID            uint
	ProductID     uint
	AdminID       uint
	QuantityAdded int
	RestockDate   time.Time
}

// RestockResult summarises a successful restock.
type RestockResult struct {
	ProductName   string
	QuantityAdded int
	NewStock      int
}

// RestockWithDetails is a restock joined with the sweet name and the acting admin.
type RestockWithDetails struct {
	Restock

	ProductName      string
	AdminName        string
	ProductAvailable bool
}
