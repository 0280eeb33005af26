package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtl "attendance_backend/internals/features/attendance/reports/controller"
)

func ReportUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := reportCtl.NewReportController(db)

	api.Get("/reports/attendance", ctl.Monthly)
	api.Get("/reports/attendance/export", ctl.Export)
	api.Get("/employees/:id/attendance", ctl.EmployeeMonth)
}
