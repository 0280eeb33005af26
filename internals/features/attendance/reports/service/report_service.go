package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	recordDTO "attendance_backend/internals/features/attendance/records/dto"
	recordModel "attendance_backend/internals/features/attendance/records/model"
	"attendance_backend/internals/features/attendance/reports/dto"
	employeeDTO "attendance_backend/internals/features/employees/employees/dto"
	employeeService "attendance_backend/internals/features/employees/employees/service"
	"attendance_backend/internals/helpers/apperror"
	"attendance_backend/internals/helpers/dbtime"
)

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type statusCount struct {
	EmployeeID uuid.UUID
	Status     string
	N          int
}

// Percentage is present/total as a percent rounded to two decimals, 0 when total is 0.
func Percentage(present, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}

func (r *statusCount) apply(row *dto.SummaryRow) {
	status, ok := recordModel.ParseStatus(r.Status)
	if !ok {
		return
	}
	switch status {
	case recordModel.StatusPresent:
		row.Present += r.N
	case recordModel.StatusAbsent:
		row.Absent += r.N
	case recordModel.StatusLeave:
		row.Leave += r.N
	case recordModel.StatusHoliday:
		row.Holiday += r.N
	}
}

func finish(row *dto.SummaryRow) {
	row.TotalDays = row.Present + row.Absent + row.Leave + row.Holiday
	row.Percentage = Percentage(row.Present, row.TotalDays)
}

/* ============================================
   SUMMARIZE
============================================ */

// Summarize returns one row per employee (name order) for the month, including
// employees with no records.
func (s *ReportService) Summarize(ctx context.Context, month, year int) ([]dto.SummaryRow, error) {
	from, to, err := dbtime.MonthRange(month, year)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	employees, err := employeeService.All(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	var counts []statusCount
	if err := s.DB.WithContext(ctx).
		Model(&recordModel.AttendanceRecordModel{}).
		Select("employee_id, status, COUNT(*) AS n").
		Where("attendance_date >= ? AND attendance_date < ?", dbtime.ToDate(from), dbtime.ToDate(to)).
		Group("employee_id, status").
		Scan(&counts).Error; err != nil {
		return nil, apperror.Internal("failed to aggregate attendance", err)
	}
	byEmployee := make(map[uuid.UUID][]statusCount, len(employees))
	for _, c := range counts {
		byEmployee[c.EmployeeID] = append(byEmployee[c.EmployeeID], c)
	}

	rows := make([]dto.SummaryRow, 0, len(employees))
	for _, e := range employees {
		row := dto.SummaryRow{Employee: employeeDTO.FromModel(e)}
		for i := range byEmployee[e.ID] {
			byEmployee[e.ID][i].apply(&row)
		}
		finish(&row)
		rows = append(rows, row)
	}
	return rows, nil
}

// Chart projects the rows into parallel series.
func Chart(rows []dto.SummaryRow) dto.Chart {
	ch := dto.Chart{
		Labels:  make([]string, 0, len(rows)),
		Present: make([]int, 0, len(rows)),
		Absent:  make([]int, 0, len(rows)),
		Leave:   make([]int, 0, len(rows)),
	}
	for _, r := range rows {
		ch.Labels = append(ch.Labels, r.Employee.Name)
		ch.Present = append(ch.Present, r.Present)
		ch.Absent = append(ch.Absent, r.Absent)
		ch.Leave = append(ch.Leave, r.Leave)
	}
	return ch
}

func (s *ReportService) Monthly(ctx context.Context, month, year int) (*dto.MonthlyReport, error) {
	rows, err := s.Summarize(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return &dto.MonthlyReport{Month: month, Year: year, Rows: rows, Chart: Chart(rows)}, nil
}

/* ============================================
   EMPLOYEE MONTH
============================================ */

// EmployeeMonth lists one employee's records for the month by date.
func (s *ReportService) EmployeeMonth(ctx context.Context, employeeID uuid.UUID, month, year int) (*dto.EmployeeMonth, error) {
	from, to, err := dbtime.MonthRange(month, year)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	emp, err := employeeService.Get(ctx, s.DB, employeeID)
	if err != nil {
		return nil, err
	}

	var recs []recordModel.AttendanceRecordModel
	if err := s.DB.WithContext(ctx).
		Where("employee_id = ? AND attendance_date >= ? AND attendance_date < ?", employeeID, dbtime.ToDate(from), dbtime.ToDate(to)).
		Order("attendance_date ASC").
		Find(&recs).Error; err != nil {
		return nil, apperror.Internal("failed to load attendance", err)
	}

	summary := dto.SummaryRow{Employee: employeeDTO.FromModel(*emp)}
	for _, r := range recs {
		(&statusCount{Status: string(r.Status), N: 1}).apply(&summary)
	}
	finish(&summary)

	return &dto.EmployeeMonth{
		Month:   month,
		Year:    year,
		Summary: summary,
		Records: recordDTO.FromModels(recs),
	}, nil
}
