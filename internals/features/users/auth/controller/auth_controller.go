package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"attendance_backend/internals/features/users/auth/dto"
	"attendance_backend/internals/features/users/auth/service"
	helper "attendance_backend/internals/helpers"
	"attendance_backend/internals/helpers/apperror"
	helperAuth "attendance_backend/internals/helpers/auth"
)

const accessCookie = "access_token"

type AuthController struct {
	DB           *gorm.DB
	Service      *service.AuthService
	SecureCookie bool
}

func NewAuthController(db *gorm.DB, secret string, ttl time.Duration, secureCookie bool) *AuthController {
	return &AuthController{
		DB:           db,
		Service:      service.NewAuthService(db, secret, ttl),
		SecureCookie: secureCookie,
	}
}

func (ac *AuthController) setAccessCookie(c *fiber.Ctx, token string, exp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     accessCookie,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   ac.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FromError(c, apperror.Validation("invalid request body"))
	}
	user, err := ac.Service.Register(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Registration successful", dto.FromUser(*user))
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FromError(c, apperror.Validation("invalid request body"))
	}
	res, err := ac.Service.Login(c.UserContext(), req)
	if err != nil {
		return helper.FromError(c, err)
	}
	ac.setAccessCookie(c, res.AccessToken, res.ExpiresAt)
	return helper.JsonOK(c, "Login successful", res)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Service.Logout(c.UserContext(), helperAuth.RawToken(c)); err != nil {
		return helper.FromError(c, err)
	}
	c.ClearCookie(accessCookie)
	return helper.JsonOK(c, "Logged out", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromCtx(c)
	if err != nil {
		return err
	}
	user, err := ac.Service.Me(c.UserContext(), actor)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromUser(*user))
}
