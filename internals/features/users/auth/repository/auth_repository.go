package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "attendance_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByUserName(ctx context.Context, db *gorm.DB, userName string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("user_name = ?", userName).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByUserNameLight loads only what login needs.
func FindUserByUserNameLight(ctx context.Context, db *gorm.DB, userName string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).
		Select("id", "user_name", "password", "role", "is_active").
		Where("user_name = ?", userName).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Preload("Profile").First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UserNameTaken(ctx context.Context, db *gorm.DB, userName string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&userModel.UserModel{}).Where("user_name = ?", userName).Count(&n).Error
	return n > 0, err
}

// CreateUserWithProfile inserts the user and its profile row in one transaction.
func CreateUserWithProfile(ctx context.Context, db *gorm.DB, user *userModel.UserModel, phone string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Profile").Create(user).Error; err != nil {
			return err
		}
		profile := userModel.UsersProfileModel{UserID: user.ID, PhoneNumber: phone}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		user.Profile = &profile
		return nil
	})
}

func UpdateUserRoleAndPassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, role, passwordHash string) error {
	updates := map[string]any{"role": role, "is_active": true}
	if passwordHash != "" {
		updates["password"] = passwordHash
	}
	return db.WithContext(ctx).Model(&userModel.UserModel{}).Where("id = ?", userID).Updates(updates).Error
}
