package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	maintenanceRoute "attendance_backend/internals/features/attendance/maintenance/route"
	recordRoute "attendance_backend/internals/features/attendance/records/route"
	reportRoute "attendance_backend/internals/features/attendance/reports/route"
)

func AttendanceUserRoutes(api fiber.Router, db *gorm.DB) {
	recordRoute.AttendanceUserRoutes(api, db)
	reportRoute.ReportUserRoutes(api, db)
}

func AttendanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	maintenanceRoute.MaintenanceAdminRoutes(api, db)
}
