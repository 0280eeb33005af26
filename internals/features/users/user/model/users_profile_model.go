package model

import (
	"time"

	"github.com/google/uuid"
)

type UsersProfileModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uq_users_profile_user_id" json:"user_id"`
	PhoneNumber string    `gorm:"size:15" json:"phone_number"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UsersProfileModel) TableName() string { return "users_profile" }
