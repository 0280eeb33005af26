package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"attendance_backend/internals/features/employees/employees/model"
)

// =======================
// Request DTO
// =======================

type CreateEmployeeRequest struct {
	Name   string          `json:"name"     validate:"required,max=100"`
	Code   string          `json:"emp_code" validate:"required,max=20"`
	Role   string          `json:"role"     validate:"required,max=100"`
	Salary decimal.Decimal `json:"salary"`
}

// pointer fields: absent means unchanged
type UpdateEmployeeRequest struct {
	Name   *string          `json:"name,omitempty"     validate:"omitempty,min=1,max=100"`
	Code   *string          `json:"emp_code,omitempty" validate:"omitempty,max=20"`
	Role   *string          `json:"role,omitempty"     validate:"omitempty,min=1,max=100"`
	Salary *decimal.Decimal `json:"salary,omitempty"`
}

type ListEmployeesQuery struct {
	Q       string `query:"q"`
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}

// =======================
// Response DTO
// =======================

type EmployeeResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Code      string          `json:"emp_code"`
	Role      string          `json:"role"`
	Salary    decimal.Decimal `json:"salary"`
	OwnerID   *uuid.UUID      `json:"owner_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// =======================
// Helpers
// =======================

func (p *CreateEmployeeRequest) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Code = strings.TrimSpace(p.Code)
	p.Role = strings.TrimSpace(p.Role)
}

func (p *CreateEmployeeRequest) ToModel(ownerID *uuid.UUID) model.EmployeeModel {
	return model.EmployeeModel{
		OwnerID: ownerID,
		Name:    p.Name,
		Code:    p.Code,
		Role:    p.Role,
		Salary:  p.Salary.Round(2),
	}
}

func (u *UpdateEmployeeRequest) Normalize() {
	trim := func(s *string) {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	trim(u.Name)
	trim(u.Code)
	trim(u.Role)
}

// ApplyUpdates copies the mutable fields; emp_code is checked by the service.
func (u *UpdateEmployeeRequest) ApplyUpdates(ent *model.EmployeeModel) {
	if u.Name != nil {
		ent.Name = *u.Name
	}
	if u.Role != nil {
		ent.Role = *u.Role
	}
	if u.Salary != nil {
		ent.Salary = u.Salary.Round(2)
	}
}

func FromModel(ent model.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		ID:        ent.ID,
		Name:      ent.Name,
		Code:      ent.Code,
		Role:      ent.Role,
		Salary:    ent.Salary,
		OwnerID:   ent.OwnerID,
		CreatedAt: ent.CreatedAt,
		UpdatedAt: ent.UpdatedAt,
	}
}

func FromModels(list []model.EmployeeModel) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
