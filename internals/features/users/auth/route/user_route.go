package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"attendance_backend/internals/configs"
	controller "attendance_backend/internals/features/users/auth/controller"
	helperAuth "attendance_backend/internals/helpers/auth"
	rateLimiter "attendance_backend/internals/middlewares"
	authMiddleware "attendance_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth. Register and login are public and rate limited.
func AuthRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	authController := controller.NewAuthController(db, cfg.JWT.Secret, cfg.JWT.TTL, cfg.Env == "production")

	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)

	// 🔐 Protected
	requireAuth := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              cfg.JWT.Secret,
		BlacklistChecker:    helperAuth.BlacklistChecker(db, cfg.JWT.Secret),
		AllowCookieFallback: true,
	})
	baseAuth.Post("/logout", requireAuth, authController.Logout)
	baseAuth.Get("/me", requireAuth, authController.Me)
}
