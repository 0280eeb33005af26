package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	userModel "attendance_backend/internals/features/users/user/model"
)

type EmployeeModel struct {
	ID uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`

	// user that registered the employee (nullable, cascades with the account)
	OwnerID *uuid.UUID `gorm:"type:char(36);index:idx_employees_owner" json:"owner_id,omitempty"`

	Name string `gorm:"size:100;not null;index:idx_employees_name" json:"name"`
	// business identifier, immutable once created
	Code   string          `gorm:"column:emp_code;size:20;not null;uniqueIndex:uq_employees_emp_code" json:"emp_code"`
	Role   string          `gorm:"size:100;not null" json:"role"`
	Salary decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"salary"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Owner *userModel.UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EmployeeModel) TableName() string { return "employees" }

func (e *EmployeeModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
