// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core identity in the system. The password hash is never part
// of this entity; it lives behind the authentication boundary.
type User struct {
	ID              int64     // Auto-increment identifier assigned by the database.
	Email           string    // Unique login identifier.
	Name            string    // Given name.
	LastName        string    // Family name.
	BirthDate       time.Time // Date of birth captured at registration.
	CountryID       int64     // Immutable location reference set at registration.
	StateID         int64     // Immutable location reference set at registration.
	MunicipalityID  string    // Immutable location reference set at registration.
	ProfileImageURL *string   // Public URL of the profile image, nil when unset.
	Biography       *string
	LinkedinProfile *string
	InstagramHandle *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserSummary is the reduced owner view attached to feed items.
type UserSummary struct {
	ID              int64
	Name            string
	LastName        string
	ProfileImageURL *string
}

// Summary projects a User into its feed-facing summary.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}

	return &UserSummary{
		ID:              u.ID,
		Name:            u.Name,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
	}
}
