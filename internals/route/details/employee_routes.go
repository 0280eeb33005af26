package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	employeeRoute "attendance_backend/internals/features/employees/employees/route"
)

func EmployeeUserRoutes(api fiber.Router, db *gorm.DB) {
	employeeRoute.EmployeeUserRoutes(api, db)
}
