package model

import (
	"time"
)

// BusinessModel mirrors the 'businesses' table.
type BusinessModel struct {
	ID               int64   `gorm:"primaryKey;autoIncrement"`
	OwnerID          int64   `gorm:"not null;index"`
	Name             string  `gorm:"type:varchar(150);not null"`
	Description      string  `gorm:"type:text"`
	Investment       float64 `gorm:"type:decimal(12,2)"`
	ProfitPercentage float64 `gorm:"type:decimal(5,2)"`
	CategoryID       int64   `gorm:"index"`
	MunicipalityID   string  `gorm:"type:varchar(10)"`
	BusinessModel    string  `gorm:"type:text"`
	MonthlyIncome    float64 `gorm:"type:decimal(12,2)"`
	ImageURL         *string
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// PartnershipModel mirrors the 'partnerships' join table. The composite
// primary key makes duplicate interest a constraint no-op.
type PartnershipModel struct {
	UserID      int64     `gorm:"primaryKey"`
	BusinessID  int64     `gorm:"primaryKey"`
	InitiatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (PartnershipModel) TableName() string {
	return "partnerships"
}

// UserSavedBusinessModel mirrors the 'user_saved_businesses' join table.
type UserSavedBusinessModel struct {
	UserID     int64     `gorm:"primaryKey"`
	BusinessID int64     `gorm:"primaryKey"`
	SavedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserSavedBusinessModel) TableName() string {
	return "user_saved_businesses"
}

// UserLikedBusinessModel mirrors the 'user_liked_businesses' join table.
type UserLikedBusinessModel struct {
	UserID     int64     `gorm:"primaryKey"`
	BusinessID int64     `gorm:"primaryKey"`
	LikedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserLikedBusinessModel) TableName() string {
	return "user_liked_businesses"
}
