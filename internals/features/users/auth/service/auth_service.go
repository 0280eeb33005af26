package service

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"attendance_backend/internals/features/users/auth/dto"
	authHelper "attendance_backend/internals/features/users/auth/helper"
	authRepo "attendance_backend/internals/features/users/auth/repository"
	userModel "attendance_backend/internals/features/users/user/model"
	"attendance_backend/internals/helpers/apperror"
	helperAuth "attendance_backend/internals/helpers/auth"
	"attendance_backend/internals/helpers/dberr"
)

const maxPhoneLength = 15

var (
	errBadCredentials = apperror.Unauthorized("invalid user name or password")
	errInactive       = apperror.Forbidden("your account has been deactivated")
	errUserNameTaken  = apperror.Conflict("user name already taken")
	errUserNotFound   = apperror.NotFound("user not found")
)

type AuthService struct {
	DB     *gorm.DB
	Secret string
	TTL    time.Duration
	Now    func() time.Time
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{DB: db, Secret: secret, TTL: ttl, Now: time.Now}
}

/* ==========================
   REGISTER
========================== */

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*userModel.UserModel, error) {
	req.Normalize()
	if req.UserName == "" || req.Password == "" || req.PasswordConfirm == "" {
		return nil, apperror.Validation("user_name, password and password_confirm are required")
	}
	if err := authHelper.ValidatePassword(req.Password, req.PasswordConfirm); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if len(req.PhoneNumber) > maxPhoneLength {
		return nil, apperror.Validation("phone_number must be at most 15 characters")
	}

	user := userModel.UserModel{UserName: req.UserName, Password: req.Password, Role: userModel.RoleUser, IsActive: true}
	if err := user.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	taken, err := authRepo.UserNameTaken(ctx, s.DB, user.UserName)
	if err != nil {
		return nil, apperror.Internal("failed to check user name", err)
	}
	if taken {
		return nil, errUserNameTaken
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal("failed to hash password", err)
	}
	user.Password = hash

	if err := authRepo.CreateUserWithProfile(ctx, s.DB, &user, req.PhoneNumber); err != nil {
		if dberr.IsDuplicateKey(err) {
			return nil, errUserNameTaken
		}
		return nil, apperror.Internal("failed to create user", err)
	}
	log.Printf("[INFO] registered user %s", user.UserName)
	return &user, nil
}

/* ==========================
   LOGIN
========================== */

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	userName := authHelper.NormalizeUserName(req.UserName)
	if userName == "" || req.Password == "" {
		return nil, apperror.Validation("user_name and password are required")
	}

	user, err := authRepo.FindUserByUserNameLight(ctx, s.DB, userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errBadCredentials
		}
		return nil, apperror.Internal("failed to load user", err)
	}
	if err := authHelper.CheckPasswordHash(user.Password, req.Password); err != nil {
		return nil, errBadCredentials
	}
	if !user.IsActive {
		return nil, errInactive
	}

	actor := helperAuth.Actor{UserID: user.ID, UserName: user.UserName, Role: user.Role}
	token, exp, err := helperAuth.IssueToken(s.Secret, actor, s.TTL, s.Now())
	if err != nil {
		return nil, apperror.Internal("failed to sign token", err)
	}

	full, err := authRepo.FindUserByID(ctx, s.DB, user.ID)
	if err != nil {
		return nil, apperror.Internal("failed to load user", err)
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   exp,
		User:        dto.FromUser(*full),
	}, nil
}

/* ==========================
   LOGOUT
========================== */

// Logout revokes rawToken until its own expiry.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	claims, err := helperAuth.ParseToken(s.Secret, rawToken)
	if err != nil {
		return apperror.Unauthorized("invalid token")
	}
	exp := s.Now().Add(s.TTL)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	if err := helperAuth.Add(ctx, s.DB, rawToken, s.Secret, exp); err != nil {
		return apperror.Internal("failed to revoke token", err)
	}
	return nil
}

/* ==========================
   ME
========================== */

func (s *AuthService) Me(ctx context.Context, actor helperAuth.Actor) (*userModel.UserModel, error) {
	user, err := authRepo.FindUserByID(ctx, s.DB, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, apperror.Internal("failed to load user", err)
	}
	return user, nil
}

/* ==========================
   ADMIN BOOTSTRAP
========================== */

// CreateOrPromoteAdmin creates an admin account, or promotes (and reactivates)
// an existing one. A non-empty password replaces the stored one.
func (s *AuthService) CreateOrPromoteAdmin(ctx context.Context, userName, password string) (*userModel.UserModel, bool, error) {
	userName = authHelper.NormalizeUserName(userName)
	if userName == "" {
		return nil, false, apperror.Validation("user name is required")
	}

	existing, err := authRepo.FindUserByUserName(ctx, s.DB, userName)
	switch {
	case err == nil:
		hash := ""
		if password != "" {
			if err := authHelper.ValidatePassword(password, password); err != nil {
				return nil, false, apperror.Validation(err.Error())
			}
			if hash, err = authHelper.HashPassword(password); err != nil {
				return nil, false, apperror.Internal("failed to hash password", err)
			}
		}
		if err := authRepo.UpdateUserRoleAndPassword(ctx, s.DB, existing.ID, userModel.RoleAdmin, hash); err != nil {
			return nil, false, apperror.Internal("failed to promote user", err)
		}
		user, err := authRepo.FindUserByID(ctx, s.DB, existing.ID)
		if err != nil {
			return nil, false, apperror.Internal("failed to load user", err)
		}
		return user, false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, apperror.Internal("failed to load user", err)
	}

	user, err := s.Register(ctx, dto.RegisterRequest{UserName: userName, Password: password, PasswordConfirm: password})
	if err != nil {
		return nil, false, err
	}
	if err := authRepo.UpdateUserRoleAndPassword(ctx, s.DB, user.ID, userModel.RoleAdmin, ""); err != nil {
		return nil, false, apperror.Internal("failed to promote user", err)
	}
	user.Role = userModel.RoleAdmin
	return user, true, nil
}
