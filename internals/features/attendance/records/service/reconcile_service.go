package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"attendance_backend/internals/features/attendance/records/dto"
	"attendance_backend/internals/features/attendance/records/model"
	employeeDTO "attendance_backend/internals/features/employees/employees/dto"
	employeeModel "attendance_backend/internals/features/employees/employees/model"
	employeeService "attendance_backend/internals/features/employees/employees/service"
	"attendance_backend/internals/helpers/apperror"
	helperAuth "attendance_backend/internals/helpers/auth"
	"attendance_backend/internals/helpers/dberr"
	"attendance_backend/internals/helpers/dbtime"
	"attendance_backend/internals/metrics"
)

const reasonEmployeeNotFound = "employee not found"

type RecordService struct {
	DB *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{DB: db}
}

/* ============================================
   RECONCILE
============================================ */

// Reconcile writes each entry's status for date, one record per employee per day.
// A bad date fails the whole batch before any write; per-entry problems are
// reported in the result and the batch continues.
func (s *RecordService) Reconcile(ctx context.Context, actor helperAuth.Actor, date string, entries []dto.StatusEntry) (*dto.ReconcileResult, error) {
	day, err := dbtime.ParseDate(date)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}
	d := dbtime.ToDate(day)

	res := &dto.ReconcileResult{
		Date:   day.Format(dbtime.DateLayout),
		Errors: make([]dto.ReconcileError, 0),
	}

	entries = collapseEntries(entries)
	known, err := s.knownEmployees(ctx, entries)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		status, ok := model.ParseStatus(e.Status)
		if !ok {
			res.Skipped++
			metrics.ReconcileEntriesTotal.WithLabelValues(metrics.OutcomeSkipped).Inc()
			continue
		}

		id, err := uuid.Parse(e.EmployeeID)
		if err != nil || !known[id] {
			res.Errors = append(res.Errors, dto.ReconcileError{EmployeeID: e.EmployeeID, Reason: reasonEmployeeNotFound})
			metrics.ReconcileEntriesTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
			continue
		}

		if err := s.upsert(ctx, id, d, status); err != nil {
			outcome, reason := metrics.OutcomeFailed, err.Error()
			if dberr.IsForeignKeyViolation(err) {
				// employee removed between the lookup and the insert
				outcome, reason = metrics.OutcomeNotFound, reasonEmployeeNotFound
			} else {
				log.Printf("[WARN] reconcile %s employee=%s: %v", res.Date, id, err)
			}
			res.Errors = append(res.Errors, dto.ReconcileError{EmployeeID: e.EmployeeID, Reason: reason})
			metrics.ReconcileEntriesTotal.WithLabelValues(outcome).Inc()
			continue
		}
		res.Applied++
		metrics.ReconcileEntriesTotal.WithLabelValues(metrics.OutcomeApplied).Inc()
	}

	log.Printf("[INFO] reconcile date=%s by=%s applied=%d skipped=%d errors=%d",
		res.Date, actor.UserName, res.Applied, res.Skipped, len(res.Errors))
	return res, nil
}

// collapseEntries keeps one entry per employee: the last one submitted,
// at the position the employee first appeared.
func collapseEntries(entries []dto.StatusEntry) []dto.StatusEntry {
	out := make([]dto.StatusEntry, 0, len(entries))
	pos := make(map[string]int, len(entries))
	for _, e := range entries {
		key := strings.TrimSpace(e.EmployeeID)
		if id, err := uuid.Parse(key); err == nil {
			key = id.String()
		}
		if i, ok := pos[key]; ok {
			out[i] = e
			continue
		}
		pos[key] = len(out)
		out = append(out, e)
	}
	return out
}

// knownEmployees resolves every parseable id in one query.
func (s *RecordService) knownEmployees(ctx context.Context, entries []dto.StatusEntry) (map[uuid.UUID]bool, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if id, err := uuid.Parse(e.EmployeeID); err == nil {
			ids = append(ids, id)
		}
	}
	known := make(map[uuid.UUID]bool, len(ids))
	if len(ids) == 0 {
		return known, nil
	}

	var found []uuid.UUID
	if err := s.DB.WithContext(ctx).
		Model(&employeeModel.EmployeeModel{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, apperror.Internal("failed to resolve employees", err)
	}
	for _, id := range found {
		known[id] = true
	}
	return known, nil
}

// upsert inserts the (employee, date) record or overwrites its status.
// A unique violation on insert means a concurrent writer won; its row is updated instead.
func (s *RecordService) upsert(ctx context.Context, employeeID uuid.UUID, d datatypes.Date, status model.AttendanceStatus) error {
	db := s.DB.WithContext(ctx)

	rec, err := findRecord(db, employeeID, d)
	if err == nil {
		return setStatus(db, rec, status)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	rec = &model.AttendanceRecordModel{EmployeeID: employeeID, Date: d, Status: status}
	err = db.Create(rec).Error
	if err == nil || !dberr.IsDuplicateKey(err) {
		return err
	}

	rec, err = findRecord(db, employeeID, d)
	if err != nil {
		return err
	}
	return setStatus(db, rec, status)
}

func findRecord(db *gorm.DB, employeeID uuid.UUID, d datatypes.Date) (*model.AttendanceRecordModel, error) {
	var rec model.AttendanceRecordModel
	err := db.Where("employee_id = ? AND attendance_date = ?", employeeID, d).Take(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func setStatus(db *gorm.DB, rec *model.AttendanceRecordModel, status model.AttendanceStatus) error {
	return db.Model(rec).Update("status", status).Error
}

/* ============================================
   DAY SHEET
============================================ */

// DaySheet lists every employee with its status on date.
func (s *RecordService) DaySheet(ctx context.Context, date string) (*dto.DaySheet, error) {
	day, err := dbtime.ParseDate(date)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	employees, err := employeeService.All(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	var recs []model.AttendanceRecordModel
	if err := s.DB.WithContext(ctx).
		Where("attendance_date = ?", dbtime.ToDate(day)).
		Find(&recs).Error; err != nil {
		return nil, apperror.Internal("failed to load attendance", err)
	}
	byEmployee := make(map[uuid.UUID]model.AttendanceStatus, len(recs))
	for _, r := range recs {
		byEmployee[r.EmployeeID] = r.Status
	}

	out := &dto.DaySheet{
		Date:      day.Format(dbtime.DateLayout),
		Statuses:  dto.StatusNames(),
		Employees: make([]dto.DaySheetRow, 0, len(employees)),
	}
	for _, e := range employees {
		out.Employees = append(out.Employees, dto.DaySheetRow{
			Employee: employeeDTO.FromModel(e),
			Status:   string(byEmployee[e.ID]),
		})
	}
	return out, nil
}
