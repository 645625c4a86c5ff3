package model

import "time"

// SweetModel mirrors the 'sweets' table.
type SweetModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Category    string  `gorm:"type:varchar(100);not null;index"`
	Price       float64 `gorm:"not null"`
	Quantity    int     `gorm:"not null;default:0;check:quantity >= 0"`
	Description *string `gorm:"type:text"`
	Img         string  `gorm:"type:varchar(512);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SweetModel) TableName() string {
	return "sweets"
}
