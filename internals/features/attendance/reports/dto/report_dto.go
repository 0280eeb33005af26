package dto

import (
	recordDTO "attendance_backend/internals/features/attendance/records/dto"
	employeeDTO "attendance_backend/internals/features/employees/employees/dto"
)

// SummaryRow is one employee's month. TotalDays only counts the four known statuses.
type SummaryRow struct {
	Employee   employeeDTO.EmployeeResponse `json:"employee"`
	Present    int                          `json:"present"`
	Absent     int                          `json:"absent"`
	Leave      int                          `json:"leave"`
	Holiday    int                          `json:"holiday"`
	TotalDays  int                          `json:"total_days"`
	Percentage float64                      `json:"percentage"`
}

// Chart series are aligned with the summary row order.
type Chart struct {
	Labels  []string `json:"labels"`
	Present []int    `json:"present"`
	Absent  []int    `json:"absent"`
	Leave   []int    `json:"leave"`
}

type MonthlyReport struct {
	Month int          `json:"month"`
	Year  int          `json:"year"`
	Rows  []SummaryRow `json:"rows"`
	Chart Chart        `json:"chart"`
}

type EmployeeMonth struct {
	Month   int                                  `json:"month"`
	Year    int                                  `json:"year"`
	Summary SummaryRow                           `json:"summary"`
	Records []recordDTO.AttendanceRecordResponse `json:"records"`
}
