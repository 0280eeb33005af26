package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	recordModel "attendance_backend/internals/features/attendance/records/model"
	"attendance_backend/internals/features/employees/employees/dto"
	"attendance_backend/internals/features/employees/employees/model"
	helper "attendance_backend/internals/helpers"
	"attendance_backend/internals/helpers/apperror"
	helperAuth "attendance_backend/internals/helpers/auth"
	"attendance_backend/internals/helpers/dberr"
)

const directoryOrder = "name ASC, created_at ASC, id ASC"

var (
	errEmployeeNotFound = apperror.NotFound("employee not found")
	errCodeTaken        = apperror.Conflict("emp_code already exists")
	errCodeImmutable    = apperror.Validation("emp_code cannot be changed")
	errNegativeSalary   = apperror.Validation("salary must not be negative")
)

type EmployeeService struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEmployeeService(db *gorm.DB, v *validator.Validate) *EmployeeService {
	if v == nil {
		v = helper.NewValidator()
	}
	return &EmployeeService{DB: db, Validator: v}
}

/* ============================================
   CREATE
============================================ */

func (s *EmployeeService) Create(ctx context.Context, actor helperAuth.Actor, req dto.CreateEmployeeRequest) (*model.EmployeeModel, error) {
	req.Normalize()
	if err := s.Validator.Struct(&req); err != nil {
		return nil, apperror.FromValidator(err)
	}
	if req.Salary.IsNegative() {
		return nil, errNegativeSalary
	}

	var cnt int64
	if err := s.DB.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("emp_code = ?", req.Code).
		Count(&cnt).Error; err != nil {
		return nil, apperror.Internal("failed to check emp_code", err)
	}
	if cnt > 0 {
		return nil, errCodeTaken
	}

	var owner *uuid.UUID
	if actor.UserID != uuid.Nil {
		id := actor.UserID
		owner = &id
	}

	ent := req.ToModel(owner)
	if err := s.DB.WithContext(ctx).Create(&ent).Error; err != nil {
		// lost the race with a concurrent create
		if dberr.IsDuplicateKey(err) {
			return nil, errCodeTaken
		}
		return nil, apperror.Internal("failed to create employee", err)
	}
	return &ent, nil
}

/* ============================================
   READ
============================================ */

func (s *EmployeeService) Get(ctx context.Context, id uuid.UUID) (*model.EmployeeModel, error) {
	return Get(ctx, s.DB, id)
}

// Get loads one employee; NotFound when the id is unknown.
func Get(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.EmployeeModel, error) {
	var ent model.EmployeeModel
	if err := db.WithContext(ctx).First(&ent, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errEmployeeNotFound
		}
		return nil, apperror.Internal("failed to load employee", err)
	}
	return &ent, nil
}

// List pages through the directory, optionally filtered by q over name, emp_code and role.
func (s *EmployeeService) List(ctx context.Context, q string, p helper.Paging) ([]model.EmployeeModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.EmployeeModel{})
	if q = strings.ToLower(strings.TrimSpace(q)); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(emp_code) LIKE ? OR LOWER(role) LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperror.Internal("failed to count employees", err)
	}

	var list []model.EmployeeModel
	if err := tx.Order(directoryOrder).Offset(p.Offset).Limit(p.Limit).Find(&list).Error; err != nil {
		return nil, 0, apperror.Internal("failed to list employees", err)
	}
	return list, total, nil
}

// All returns the whole directory in name order.
func (s *EmployeeService) All(ctx context.Context) ([]model.EmployeeModel, error) {
	return All(ctx, s.DB)
}

func All(ctx context.Context, db *gorm.DB) ([]model.EmployeeModel, error) {
	var list []model.EmployeeModel
	if err := db.WithContext(ctx).Order(directoryOrder).Find(&list).Error; err != nil {
		return nil, apperror.Internal("failed to load employees", err)
	}
	return list, nil
}

/* ============================================
   UPDATE
============================================ */

func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateEmployeeRequest) (*model.EmployeeModel, error) {
	req.Normalize()
	if err := s.Validator.Struct(&req); err != nil {
		return nil, apperror.FromValidator(err)
	}
	if req.Salary != nil && req.Salary.IsNegative() {
		return nil, errNegativeSalary
	}

	ent, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Code != nil && *req.Code != ent.Code {
		return nil, errCodeImmutable
	}

	req.ApplyUpdates(ent)
	if err := s.DB.WithContext(ctx).
		Model(ent).
		Select("name", "role", "salary", "updated_at").
		Updates(ent).Error; err != nil {
		return nil, apperror.Internal("failed to update employee", err)
	}
	return s.Get(ctx, id)
}

/* ============================================
   DELETE
============================================ */

// Delete removes the employee and its attendance in one transaction.
func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ent model.EmployeeModel
		if err := tx.Select("id").First(&ent, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errEmployeeNotFound
			}
			return apperror.Internal("failed to load employee", err)
		}
		if err := tx.Where("employee_id = ?", id).Delete(&recordModel.AttendanceRecordModel{}).Error; err != nil {
			return apperror.Internal("failed to delete attendance", err)
		}
		if err := tx.Delete(&model.EmployeeModel{}, "id = ?", id).Error; err != nil {
			return apperror.Internal("failed to delete employee", err)
		}
		return nil
	})
}
