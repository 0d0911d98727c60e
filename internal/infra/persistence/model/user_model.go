// Package model holds the GORM persistence models. They mirror the database
// tables and are mapped to pure domain entities at the repository boundary.
package model

import "time"

// UserModel mirrors the 'users' table. The password column stores a bcrypt
// hash, never plaintext.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	Name         string `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
