package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"attendance_backend/internals/configs"
	authRoute "attendance_backend/internals/features/users/auth/route"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	authRoute.AuthRoutes(app, db, cfg)
}
