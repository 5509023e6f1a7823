package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken,omitempty"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn,omitempty"`
}

// RefreshTokenRequest represents a refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthUser is the user block embedded in login responses. StudentID is null
// when the account has no linked student record.
type AuthUser struct {
	ID        int64    `json:"id" example:"1"`
	Username  string   `json:"username" example:"ana.gomez"`
	Email     string   `json:"email" example:"ana.gomez@mail.com"`
	FirstName string   `json:"firstName" example:"Ana"`
	LastName  string   `json:"lastName" example:"Gómez"`
	Roles     []string `json:"roles" example:"alumno"`
	StudentID *int64   `json:"studentId" example:"1"`
}

// LoginResponse bundles the issued tokens with the authenticated user block
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  AuthUser      `json:"user"`
}
