package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Password     string    `gorm:"type:varchar(255);not null;default:''"`
	Level        int       `gorm:"not null;index:idx_users_level"`
	Login        int       `gorm:"not null;default:0"`
	Recommend    int       `gorm:"not null;default:0"`
	Email        string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt    time.Time `gorm:"not null"`
	LastUpgraded time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
