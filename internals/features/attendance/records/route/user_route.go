package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordCtl "attendance_backend/internals/features/attendance/records/controller"
)

func AttendanceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := recordCtl.NewAttendanceRecordController(db, nil)

	g := api.Group("/attendance")
	g.Get("/", ctl.DaySheet)
	g.Post("/", ctl.Reconcile)
}
