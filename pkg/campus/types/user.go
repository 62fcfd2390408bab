package types

// UserInfo is the identity embedded in authentication responses.
type UserInfo struct {
	UserID string  `json:"userId"`
	Email  string  `json:"email"`
	Name   *string `json:"name"`
	Role   Role    `json:"role"`
}

// DisplayName returns the user's name, falling back to the email address
// when no name is set.
func (u UserInfo) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Email
}

// TokenClaims are the claim fields the gateway embeds in auth responses.
type TokenClaims struct {
	Role   Role   `json:"role"`
	UserID string `json:"userId"`
}

// AuthResponse is the body returned by login, signup, and refresh.
// Refresh responses may omit claims and user; token and refreshToken are
// always present on success.
type AuthResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresIn    int64       `json:"expiresIn"`
	Claims       TokenClaims `json:"claims"`
	User         *UserInfo   `json:"user"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body for POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

// RefreshRequest is the body for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UserProfile is the full profile record managed by the user service.
type UserProfile struct {
	UserID          string  `json:"userId"`
	Email           string  `json:"email"`
	Name            *string `json:"name"`
	Role            Role    `json:"role"`
	ProfilePicture  *string `json:"profilePicture,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	PhoneNumber     *string `json:"phoneNumber,omitempty"`
	IsEmailVerified bool    `json:"isEmailVerified,omitempty"`
	IsPhoneVerified bool    `json:"isPhoneVerified,omitempty"`
	IsActive        bool    `json:"isActive,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}

// CreateUserProfileRequest is the body for POST /users.
type CreateUserProfileRequest struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   Role   `json:"role,omitempty"`
}

// UpdateUserProfileRequest is the body for PUT /users/{id}.
// Nil fields are left unchanged by the server.
type UpdateUserProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	Email          *string `json:"email,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	PhoneNumber    *string `json:"phoneNumber,omitempty"`
}
