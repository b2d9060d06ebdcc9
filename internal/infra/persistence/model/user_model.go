// Package model holds the GORM table mappings for the persistence layer.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The password column is only ever read
// and written through the auth repository.
type UserModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Email           string `gorm:"type:varchar(255);unique;not null"`
	Password        string `gorm:"type:varchar(255);not null"`
	Name            string `gorm:"type:varchar(100);not null"`
	LastName        string `gorm:"type:varchar(100);not null"`
	BirthDate       time.Time
	CountryID       int64
	StateID         int64
	MunicipalityID  string `gorm:"type:varchar(10)"`
	ProfileImageURL *string
	Biography       *string `gorm:"type:text"`
	LinkedinProfile *string
	InstagramHandle *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
