package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	employeeCtl "attendance_backend/internals/features/employees/employees/controller"
)

// EmployeeUserRoutes mounts the directory under an authenticated group.
func EmployeeUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := employeeCtl.NewEmployeeController(db, nil)

	g := api.Group("/employees")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
