package model

import "time"

// PurchaseModel mirrors the 'purchases' table.
// SweetID and UserID are plain columns: deleting a sweet leaves its purchases in place.
type PurchaseModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	UserID       uint      `gorm:"not null;index"`
	SweetID      uint      `gorm:"not null;index"`
	Quantity     int       `gorm:"not null"`
	TotalPrice   float64   `gorm:"not null"`
	PurchaseDate time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// RestockModel mirrors the 'restock_history' table.
type RestockModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	SweetID       uint      `gorm:"not null;index"`
	AdminID       uint      `gorm:"not null"`
	QuantityAdded int       `gorm:"not null"`
	RestockDate   time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (RestockModel) TableName() string {
	return "restock_history"
}

// PurchaseRow is the scan target of the purchase history join.
type PurchaseRow struct {
	PurchaseModel

	SweetName     *string
	SweetCategory *string
	SweetImg      *string
}

// RestockRow is the scan target of the restock history join.
type RestockRow struct {
	RestockModel

	SweetName *string
	AdminName *string
}

// All lists every model managed by auto-migration.
func All() []any {
	return []any{
		&UserModel{},
		&SweetModel{},
		&PurchaseModel{},
		&RestockModel{},
	}
}
