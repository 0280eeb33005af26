package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "attendance_backend/internals/features/users/user/route"
)

func UserUserRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserUserRoutes(api, db)
}

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(api, db)
}
