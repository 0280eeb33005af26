package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"attendance_backend/internals/features/attendance/records/model"
	employeeDTO "attendance_backend/internals/features/employees/employees/dto"
	"attendance_backend/internals/helpers/dbtime"
)

// =======================
// Request DTO
// =======================

// StatusEntry is one employee's status for the batch date. Empty or unknown
// statuses are skipped, not rejected.
type StatusEntry struct {
	EmployeeID string `json:"employee_id" form:"employee_id"`
	Status     string `json:"status"      form:"status"`
}

type ReconcileRequest struct {
	Date    string        `json:"date"    form:"date"`
	Entries []StatusEntry `json:"entries" validate:"max=5000"`
}

func (r *ReconcileRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	for i := range r.Entries {
		r.Entries[i].EmployeeID = strings.TrimSpace(r.Entries[i].EmployeeID)
	}
}

// =======================
// Response DTO
// =======================

type ReconcileError struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type ReconcileResult struct {
	Date    string           `json:"date"`
	Applied int              `json:"applied"`
	Skipped int              `json:"skipped"`
	Errors  []ReconcileError `json:"errors"`
}

type AttendanceRecordResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DaySheetRow carries "" as status when the employee has no record that day.
type DaySheetRow struct {
	Employee employeeDTO.EmployeeResponse `json:"employee"`
	Status   string                       `json:"status"`
}

type DaySheet struct {
	Date      string        `json:"date"`
	Statuses  []string      `json:"statuses"`
	Employees []DaySheetRow `json:"employees"`
}

func FromModel(m model.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Date:       dbtime.FormatDate(m.Date),
		Status:     string(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func FromModels(list []model.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}

func StatusNames() []string {
	out := make([]string, 0, len(model.AllStatuses))
	for _, s := range model.AllStatuses {
		out = append(out, string(s))
	}
	return out
}
