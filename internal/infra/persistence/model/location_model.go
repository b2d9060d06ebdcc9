package model

// CountryModel mirrors the 'countries' reference table.
type CountryModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// StateModel mirrors the 'states' reference table.
type StateModel struct {
	ID        int64  `gorm:"primaryKey"`
	CountryID int64  `gorm:"index"`
	Name      string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (StateModel) TableName() string {
	return "states"
}

// MunicipalityModel mirrors the 'municipalities' reference table.
// IDs are external string codes.
type MunicipalityModel struct {
	ID      string `gorm:"type:varchar(10);primaryKey"`
	StateID int64  `gorm:"index"`
	Name    string `gorm:"type:varchar(150);not null"`
}

// TableName explicitly sets the table name for GORM.
func (MunicipalityModel) TableName() string {
	return "municipalities"
}

// CategoryModel mirrors the 'categories' reference table.
type CategoryModel struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"type:varchar(100);not null"`
	IconKey string `gorm:"type:varchar(50)"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
