package seeds

import (
	"path/filepath"

	"gorm.io/gorm"

	employees "attendance_backend/internals/seeds/employees"
	users "attendance_backend/internals/seeds/users/auth"
)

// RunAllSeeds loads the JSON fixtures under dir (normally internals/seeds).
// Existing rows are left alone, so it is safe to run repeatedly.
func RunAllSeeds(db *gorm.DB, dir string) error {
	//* User
	if err := users.SeedUsersFromJSON(db, filepath.Join(dir, "users", "auth", "data_users.json")); err != nil {
		return err
	}

	//* Employee
	return employees.SeedEmployeesFromJSON(db, filepath.Join(dir, "employees", "data_employees.json"))
}
