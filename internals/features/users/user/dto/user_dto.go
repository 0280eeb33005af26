package dto

import (
	"strings"

	authDto "attendance_backend/internals/features/users/auth/dto"
	"attendance_backend/internals/features/users/user/model"
)

// PATCH /api/a/users/:id
type UpdateAccessRequest struct {
	Role     *string `json:"role"      form:"role"      validate:"omitempty,oneof=user admin"`
	IsActive *bool   `json:"is_active" form:"is_active"`
}

func (r *UpdateAccessRequest) Normalize() {
	if r.Role != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Role))
		r.Role = &v
	}
}

// PATCH /api/u/users/me/profile
type UpdateProfileRequest struct {
	PhoneNumber *string `json:"phone_number" form:"phone_number" validate:"omitempty,max=15"`
}

func (r *UpdateProfileRequest) Normalize() {
	if r.PhoneNumber != nil {
		v := strings.TrimSpace(*r.PhoneNumber)
		r.PhoneNumber = &v
	}
}

func FromModels(list []model.UserModel) []authDto.UserResponse {
	out := make([]authDto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, authDto.FromUser(u))
	}
	return out
}
