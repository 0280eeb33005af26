package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	employeeModel "attendance_backend/internals/features/employees/employees/model"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
	StatusLeave   AttendanceStatus = "Leave"
	StatusHoliday AttendanceStatus = "Holiday"
)

var AllStatuses = []AttendanceStatus{StatusPresent, StatusAbsent, StatusLeave, StatusHoliday}

// ParseStatus matches case-insensitively after trimming and returns the canonical value.
func ParseStatus(raw string) (AttendanceStatus, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, s := range AllStatuses {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

type AttendanceRecordModel struct {
	ID uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`

	// one record per employee per calendar day
	EmployeeID uuid.UUID      `gorm:"type:char(36);not null;uniqueIndex:uq_attendance_employee_date,priority:1" json:"employee_id"`
	Date       datatypes.Date `gorm:"column:attendance_date;not null;uniqueIndex:uq_attendance_employee_date,priority:2;index:idx_attendance_date" json:"date"`

	Status AttendanceStatus `gorm:"type:varchar(10);not null" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Employee *employeeModel.EmployeeModel `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (r *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
