package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"attendance_backend/internals/constants"
	userController "attendance_backend/internals/features/users/user/controller"
	authMiddleware "attendance_backend/internals/middlewares/auth"
)

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	// 🔐 /users, admin only
	users := api.Group("/users",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("User Management"), constants.AdminOnly),
	)
	users.Get("/", userCtrl.GetUsers)
	users.Patch("/:id", userCtrl.UpdateAccess)
}

func UserUserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	api.Patch("/users/me/profile", userCtrl.UpdateMyProfile)
}
