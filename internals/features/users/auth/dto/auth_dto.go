package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	userModel "attendance_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	UserName        string `json:"user_name"        form:"user_name"`
	Password        string `json:"password"         form:"password"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm"`
	PhoneNumber     string `json:"phone_number"     form:"phone_number"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
}

type LoginRequest struct {
	UserName string `json:"user_name" form:"user_name"`
	Password string `json:"password"  form:"password"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"user_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func FromUser(u userModel.UserModel) UserResponse {
	out := UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
	if u.Profile != nil {
		out.PhoneNumber = u.Profile.PhoneNumber
	}
	return out
}
