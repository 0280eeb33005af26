package user

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	authHelper "attendance_backend/internals/features/users/auth/helper"
	"attendance_backend/internals/features/users/user/model"
)

type UserSeed struct {
	UserName    string `json:"user_name"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Reading users from:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_name = ?", data.UserName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User '%s' already exists, skipped.", data.UserName)
			continue
		}

		newUser := model.UserModel{
			UserName: data.UserName,
			Password: data.Password,
			Role:     data.Role,
			IsActive: true,
		}
		if err := newUser.Validate(); err != nil {
			log.Printf("❌ Invalid seed user '%s': %v", data.UserName, err)
			continue
		}

		// 🔐 hash before storing
		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Failed to hash password for '%s': %v", data.UserName, err)
			continue
		}
		newUser.Password = hashedPassword
		newUser.Profile = &model.UsersProfileModel{PhoneNumber: data.PhoneNumber}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Failed to insert user '%s': %v", data.UserName, err)
		} else {
			log.Printf("✅ Inserted user '%s'", data.UserName)
		}
	}
	return nil
}
