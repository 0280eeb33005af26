package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authRepo "attendance_backend/internals/features/users/auth/repository"
	"attendance_backend/internals/features/users/user/dto"
	"attendance_backend/internals/features/users/user/model"
	helper "attendance_backend/internals/helpers"
	"attendance_backend/internals/helpers/apperror"
	helperAuth "attendance_backend/internals/helpers/auth"
)

var ErrSelfLockout = apperror.Validation("you cannot remove your own admin access")

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// List pages accounts by user name. role narrows to one role when set.
func (s *UserService) List(ctx context.Context, q, role string, p helper.Paging) ([]model.UserModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.UserModel{})
	if q = strings.ToLower(strings.TrimSpace(q)); q != "" {
		tx = tx.Where("LOWER(user_name) LIKE ?", "%"+q+"%")
	}
	if role = strings.ToLower(strings.TrimSpace(role)); role != "" {
		tx = tx.Where("role = ?", role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, apperror.Internal("failed to count users", err)
	}

	var list []model.UserModel
	if err := tx.Preload("Profile").
		Order("user_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&list).Error; err != nil {
		return nil, 0, apperror.Internal("failed to list users", err)
	}
	return list, total, nil
}

func (s *UserService) get(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	u, err := authRepo.FindUserByID(ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("user not found")
	}
	if err != nil {
		return nil, apperror.Internal("failed to load user", err)
	}
	return u, nil
}

// UpdateAccess changes role and/or the active flag. An admin cannot demote
// or deactivate their own account.
func (s *UserService) UpdateAccess(ctx context.Context, actor helperAuth.Actor, id uuid.UUID, req dto.UpdateAccessRequest) (*model.UserModel, error) {
	req.Normalize()

	u, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if id == actor.UserID {
		if (req.Role != nil && *req.Role != model.RoleAdmin) || (req.IsActive != nil && !*req.IsActive) {
			return nil, ErrSelfLockout
		}
	}

	updates := map[string]any{"updated_at": time.Now()}
	if req.Role != nil && *req.Role != "" {
		updates["role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.DB.WithContext(ctx).Model(u).Updates(updates).Error; err != nil {
		return nil, apperror.Internal("failed to update user", err)
	}
	return s.get(ctx, id)
}

// UpdateProfile upserts the caller's profile row.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*model.UserModel, error) {
	req.Normalize()

	if _, err := s.get(ctx, userID); err != nil {
		return nil, err
	}
	if req.PhoneNumber == nil {
		return s.get(ctx, userID)
	}

	prof := model.UsersProfileModel{UserID: userID, PhoneNumber: *req.PhoneNumber}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone_number", "updated_at"}),
	}).Create(&prof).Error
	if err != nil {
		return nil, apperror.Internal("failed to save profile", err)
	}
	return s.get(ctx, userID)
}
