package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	recordModel "attendance_backend/internals/features/attendance/records/model"
	employeeModel "attendance_backend/internals/features/employees/employees/model"
	"attendance_backend/internals/helpers/apperror"
)

var ErrPurgeNotConfirmed = apperror.Validation("purge must be confirmed")

type PurgeResult struct {
	Attendance int64 `json:"attendance"`
	Employees  int64 `json:"employees"`
}

// Purge deletes every attendance record and then every employee in one
// transaction. Nothing is touched unless confirm is true.
func Purge(ctx context.Context, db *gorm.DB, confirm bool) (*PurgeResult, error) {
	if !confirm {
		return nil, ErrPurgeNotConfirmed
	}

	res := &PurgeResult{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			return truncate(tx, res)
		}

		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		r := all.Delete(&recordModel.AttendanceRecordModel{})
		if r.Error != nil {
			return r.Error
		}
		res.Attendance = r.RowsAffected

		r = all.Delete(&employeeModel.EmployeeModel{})
		if r.Error != nil {
			return r.Error
		}
		res.Employees = r.RowsAffected
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPurgeNotConfirmed) {
			return nil, err
		}
		return nil, apperror.Internal("failed to purge", err)
	}

	log.Printf("[PURGE] removed attendance=%d employees=%d", res.Attendance, res.Employees)
	return res, nil
}

// truncate counts first so the result matches the DELETE path.
func truncate(tx *gorm.DB, res *PurgeResult) error {
	if err := tx.Model(&recordModel.AttendanceRecordModel{}).Count(&res.Attendance).Error; err != nil {
		return err
	}
	if err := tx.Model(&employeeModel.EmployeeModel{}).Count(&res.Employees).Error; err != nil {
		return err
	}
	tables := []string{
		pq.QuoteIdentifier(recordModel.AttendanceRecordModel{}.TableName()),
		pq.QuoteIdentifier(employeeModel.EmployeeModel{}.TableName()),
	}
	return tx.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ")).Error
}
