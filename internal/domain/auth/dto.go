// internal/domain/auth/dto.go
package auth

// LoginRequest for console login, forwarded verbatim to the upstream API.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest for creating a new console user upstream.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,max=255"`
	Phone    string `json:"phone" binding:"max=20"`
}

// UpdateProfileRequest patches the logged-in user's profile.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" binding:"omitempty,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url,max=500"`
}
