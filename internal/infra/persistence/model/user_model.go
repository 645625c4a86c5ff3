package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(255);not null"` // bcrypt hash
	Mobile    string    `gorm:"type:varchar(15);not null"`
	Address   string    `gorm:"type:text;not null"`
	Role      string    `gorm:"type:varchar(10);not null;default:user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
