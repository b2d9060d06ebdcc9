package entity

// Country is static reference data for registration and filtering.
type Country struct {
	ID   int64
	Name string
}

// State belongs to a country.
type State struct {
	ID        int64
	CountryID int64
	Name      string
}

// Municipality belongs to a state. IDs are external string codes rather than
// auto-increment integers.
type Municipality struct {
	ID      string
	StateID int64
	Name    string
}

// Category classifies business listings.
type Category struct {
	ID      int64
	Name    string
	IconKey string
}
