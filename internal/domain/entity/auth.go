package entity

// AuthResult is returned by both registration and login.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	TokenType    string // Always "Bearer".
	ExpiresIn    int64  // Access token lifetime in seconds.
	UserID       int64
}

// Credential is the authentication-side view of a user account.
// It exists only inside the auth boundary; the password hash never crosses
// into the User entity.
type Credential struct {
	UserID       int64
	Email        string
	PasswordHash string
}
