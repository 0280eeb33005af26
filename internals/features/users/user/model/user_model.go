package model

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserModel is an application account. Password holds the bcrypt hash.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;not null;uniqueIndex:uq_users_user_name" json:"user_name" validate:"required,min=3,max=50"`
	Password  string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'" json:"role" validate:"oneof=user admin"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Profile *UsersProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *UserModel) SetDefaultValues() {
	u.UserName = strings.TrimSpace(u.UserName)
	if u.Role == "" {
		u.Role = RoleUser
	}
}

// Validate runs on the plaintext password, before hashing.
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			msgs = append(msgs, fieldErr.Field()+" is required.")
		case "min":
			msgs = append(msgs, fieldErr.Field()+" must be at least "+fieldErr.Param()+" characters.")
		case "max":
			msgs = append(msgs, fieldErr.Field()+" must be at most "+fieldErr.Param()+" characters.")
		case "oneof":
			msgs = append(msgs, fieldErr.Field()+" must be one of "+fieldErr.Param()+".")
		default:
			msgs = append(msgs, fieldErr.Field()+" is invalid.")
		}
	}
	sort.Strings(msgs)
	return errors.New(strings.Join(msgs, " "))
}
