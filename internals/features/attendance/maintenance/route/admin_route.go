package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"attendance_backend/internals/constants"
	maintenanceCtl "attendance_backend/internals/features/attendance/maintenance/controller"
	authMiddleware "attendance_backend/internals/middlewares/auth"
)

func MaintenanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := maintenanceCtl.NewMaintenanceController(db, nil)

	g := api.Group("/maintenance",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("maintenance"), constants.AdminOnly),
	)
	g.Post("/purge", ctl.Purge)
}
