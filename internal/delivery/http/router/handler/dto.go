// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
	"github.com/DiegoG0477/koru-api/internal/usecase"
)

const birthDateLayout = "2006-01-02"

// ownerResponse is the compact owner view attached to business reads.
type ownerResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	LastName        string  `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// businessResponse is the wire form of a business. The requester-relative
// flags and counts are omitted when they were not resolved.
type businessResponse struct {
	ID               int64          `json:"id"`
	OwnerID          int64          `json:"ownerId"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Investment       float64        `json:"investment"`
	ProfitPercentage float64        `json:"profitPercentage"`
	CategoryID       int64          `json:"categoryId"`
	MunicipalityID   string         `json:"municipalityId"`
	BusinessModel    string         `json:"businessModel"`
	MonthlyIncome    float64        `json:"monthlyIncome"`
	ImageURL         *string        `json:"imageUrl"`
	IsSavedByUser    *bool          `json:"isSavedByUser,omitempty"`
	IsLikedByUser    *bool          `json:"isLikedByUser,omitempty"`
	SavedCount       *int64         `json:"savedCount,omitempty"`
	LikeCount        *int64         `json:"likeCount,omitempty"`
	Owner            *ownerResponse `json:"owner,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// userResponse is the wire form of the authenticated user's profile.
type userResponse struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	LastName        string    `json:"lastName"`
	BirthDate       string    `json:"birthDate"`
	CountryID       int64     `json:"countryId"`
	StateID         int64     `json:"stateId"`
	MunicipalityID  string    `json:"municipalityId"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	Biography       *string   `json:"biography"`
	LinkedinProfile *string   `json:"linkedinProfile"`
	InstagramHandle *string   `json:"instagramHandle"`
	CreatedAt       time.Time `json:"createdAt"`
}

// authResponse is the wire form of a token grant.
type authResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
	UserID       int64  `json:"userId"`
}

// countryResponse is the wire form of a country catalog entry.
type countryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// stateResponse is the wire form of a state catalog entry.
type stateResponse struct {
	ID        int64  `json:"id"`
	CountryID int64  `json:"countryId"`
	Name      string `json:"name"`
}

// municipalityResponse is the wire form of a municipality catalog entry.
type municipalityResponse struct {
	ID      string `json:"id"`
	StateID int64  `json:"stateId"`
	Name    string `json:"name"`
}

// categoryResponse is the wire form of a business category.
type categoryResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	IconKey string `json:"iconKey"`
}

func toCountryResponses(countries []*entity.Country) []*countryResponse {
	out := make([]*countryResponse, 0, len(countries))
	for _, country := range countries {
		out = append(out, &countryResponse{ID: country.ID, Name: country.Name})
	}

	return out
}

func toStateResponses(states []*entity.State) []*stateResponse {
	out := make([]*stateResponse, 0, len(states))
	for _, state := range states {
		out = append(out, &stateResponse{ID: state.ID, CountryID: state.CountryID, Name: state.Name})
	}

	return out
}

func toMunicipalityResponses(municipalities []*entity.Municipality) []*municipalityResponse {
	out := make([]*municipalityResponse, 0, len(municipalities))
	for _, municipality := range municipalities {
		out = append(out, &municipalityResponse{
			ID:      municipality.ID,
			StateID: municipality.StateID,
			Name:    municipality.Name,
		})
	}

	return out
}

func toCategoryResponses(categories []*entity.Category) []*categoryResponse {
	out := make([]*categoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, &categoryResponse{ID: category.ID, Name: category.Name, IconKey: category.IconKey})
	}

	return out
}

func toOwnerResponse(owner *entity.UserSummary) *ownerResponse {
	if owner == nil {
		return nil
	}

	return &ownerResponse{
		ID:              owner.ID,
		Name:            owner.Name,
		LastName:        owner.LastName,
		ProfileImageURL: owner.ProfileImageURL,
	}
}

func toBusinessResponse(business *entity.Business) *businessResponse {
	return &businessResponse{
		ID:               business.ID,
		OwnerID:          business.OwnerID,
		Name:             business.Name,
		Description:      business.Description,
		Investment:       business.Investment,
		ProfitPercentage: business.ProfitPercentage,
		CategoryID:       business.CategoryID,
		MunicipalityID:   business.MunicipalityID,
		BusinessModel:    business.BusinessModel,
		MonthlyIncome:    business.MonthlyIncome,
		ImageURL:         business.ImageURL,
		IsSavedByUser:    business.IsSavedByUser,
		IsLikedByUser:    business.IsLikedByUser,
		SavedCount:       business.SavedCount,
		LikeCount:        business.LikeCount,
		CreatedAt:        business.CreatedAt,
		UpdatedAt:        business.UpdatedAt,
	}
}

func toBusinessWithOwnerResponse(item *usecase.BusinessWithOwner) *businessResponse {
	resp := toBusinessResponse(item.Business)
	resp.Owner = toOwnerResponse(item.Owner)

	return resp
}

func toBusinessListResponse(businesses []*entity.Business) []*businessResponse {
	out := make([]*businessResponse, 0, len(businesses))
	for _, business := range businesses {
		out = append(out, toBusinessResponse(business))
	}

	return out
}

func toUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		LastName:        user.LastName,
		BirthDate:       user.BirthDate.Format(birthDateLayout),
		CountryID:       user.CountryID,
		StateID:         user.StateID,
		MunicipalityID:  user.MunicipalityID,
		ProfileImageURL: user.ProfileImageURL,
		Biography:       user.Biography,
		LinkedinProfile: user.LinkedinProfile,
		InstagramHandle: user.InstagramHandle,
		CreatedAt:       user.CreatedAt,
	}
}

func toAuthResponse(result *entity.AuthResult) *authResponse {
	return &authResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    result.TokenType,
		ExpiresIn:    result.ExpiresIn,
		UserID:       result.UserID,
	}
}
