package database

import (
	"log"

	"gorm.io/gorm"

	recordModel "attendance_backend/internals/features/attendance/records/model"
	employeeModel "attendance_backend/internals/features/employees/employees/model"
	authModel "attendance_backend/internals/features/users/auth/model"
	userModel "attendance_backend/internals/features/users/user/model"
)

// Models lists every table, parents first.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&userModel.UsersProfileModel{},
		&authModel.TokenBlacklistModel{},
		&employeeModel.EmployeeModel{},
		&recordModel.AttendanceRecordModel{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	log.Println("[INFO] Schema migrated.")
	return nil
}
