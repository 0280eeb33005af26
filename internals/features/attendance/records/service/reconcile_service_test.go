package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"attendance_backend/internals/databases/dbtest"
	"attendance_backend/internals/features/attendance/records/dto"
	"attendance_backend/internals/features/attendance/records/model"
	employeeModel "attendance_backend/internals/features/employees/employees/model"
	"attendance_backend/internals/helpers/apperror"
	helperAuth "attendance_backend/internals/helpers/auth"
	"attendance_backend/internals/helpers/dberr"
	"attendance_backend/internals/helpers/dbtime"
)

var actor = helperAuth.Actor{UserName: "tester"}

func seedEmployee(t *testing.T, db *gorm.DB, name, code string) employeeModel.EmployeeModel {
	t.Helper()
	e := employeeModel.EmployeeModel{Name: name, Code: code, Role: "Staff", Salary: decimal.NewFromInt(1000)}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func records(t *testing.T, db *gorm.DB) []model.AttendanceRecordModel {
	t.Helper()
	var out []model.AttendanceRecordModel
	require.NoError(t, db.Order("attendance_date ASC").Find(&out).Error)
	return out
}

func TestReconcileIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewRecordService(db)
	e := seedEmployee(t, db, "Ana", "E1")
	entries := []dto.StatusEntry{{EmployeeID: e.ID.String(), Status: "Present"}}

	for i := 0; i < 2; i++ {
		res, err := svc.Reconcile(context.Background(), actor, "2024-05-01", entries)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Applied)
		assert.Empty(t, res.Errors)
	}

	got := records(t, db)
	require.Len(t, got, 1)
	assert.Equal(t, model.StatusPresent, got[0].Status)
	assert.Equal(t, "2024-05-01", dbtime.FormatDate(got[0].Date))
}

func TestReconcileOverwritesStatus(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewRecordService(db)
	e := seedEmployee(t, db, "Ana", "E1")
	ctx := context.Background()

	_, err := svc.Reconcile(ctx, actor, "2024-05-01", []dto.StatusEntry{{EmployeeID: e.ID.String(), Status: "Present"}})
	require.NoError(t, err)
	_, err = svc.Reconcile(ctx, actor, "2024-05-01", []dto.StatusEntry{{EmployeeID: e.ID.String(), Status: " absent "}})
	require.NoError(t, err)

	got := records(t, db)
	require.Len(t, got, 1)
	assert.Equal(t, model.StatusAbsent, got[0].Status)
}

func TestReconcileSkipsAndReportsPerEntry(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewRecordService(db)
	a := seedEmployee(t, db, "Ana", "E1")
	b := seedEmployee(t, db, "Budi", "E2")
	c := seedEmployee(t, db, "Citra", "E3")
	missing := uuid.New()

	res, err := svc.Reconcile(context.Background(), actor, "2024-05-02", []dto.StatusEntry{
		{EmployeeID: a.ID.String(), Status: "Leave"},
		{EmployeeID: b.ID.String(), Status: ""},
		{EmployeeID: c.ID.String(), Status: "Sick"},
		{EmployeeID: missing.String(), Status: "Present"},
		{EmployeeID: "not-a-uuid", Status: "Present"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, missing.String(), res.Errors[0].EmployeeID)
	assert.Equal(t, "employee not found", res.Errors[0].Reason)
	assert.Equal(t, "not-a-uuid", res.Errors[1].EmployeeID)

	got := records(t, db)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].EmployeeID)
	assert.Equal(t, model.StatusLeave, got[0].Status)
}

func TestReconcileRejectsBadDate(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewRecordService(db)
	e := seedEmployee(t, db, "Ana", "E1")
	entries := []dto.StatusEntry{{EmployeeID: e.ID.String(), Status: "Present"}}

	for _, d := range []string{"", "2024-13-01", "01/05/2024"} {
		_, err := svc.Reconcile(context.Background(), actor, d, entries)
		assert.True(t, errors.Is(err, apperror.ErrValidation), d)
	}
	assert.Empty(t, records(t, db))
}

func TestDriverErrorsAreClassified(t *testing.T) {
	db := dbtest.Open(t)
	e := seedEmployee(t, db, "Ana", "E1")
	d := dbtime.ToDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, db.Create(&model.AttendanceRecordModel{EmployeeID: e.ID, Date: d, Status: model.StatusPresent}).Error)
	dup := db.Create(&model.AttendanceRecordModel{EmployeeID: e.ID, Date: d, Status: model.StatusAbsent}).Error
	assert.True(t, dberr.IsDuplicateKey(dup))

	orphan := db.Create(&model.AttendanceRecordModel{EmployeeID: uuid.New(), Date: d, Status: model.StatusAbsent}).Error
	assert.True(t, dberr.IsForeignKeyViolation(orphan))
}

// beforeFirstRecordCreate runs fn once, right before the first attendance
// insert issued through db.
func beforeFirstRecordCreate(t *testing.T, db *gorm.DB, fn func()) {
	t.Helper()
	fired := false
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:interleave", func(tx *gorm.DB) {
		if fired {
			return
		}
		if _, ok := tx.Statement.Dest.(*model.AttendanceRecordModel); !ok {
			return
		}
		fired = true
		fn()
	}))
}

func TestReconcileLosesInsertRaceAndUpdates(t *testing.T) {
	db := dbtest.Open(t)
	e := seedEmployee(t, db, "Ana", "E1")
	d := dbtime.ToDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	// another writer commits the same (employee, date) between our lookup and insert
	beforeFirstRecordCreate(t, db, func() {
		other := db.Session(&gorm.Session{NewDB: true, SkipDefaultTransaction: true})
		require.NoError(t, other.Create(&model.AttendanceRecordModel{EmployeeID: e.ID, Date: d, Status: model.StatusPresent}).Error)
	})

	svc := NewRecordService(db.Session(&gorm.Session{SkipDefaultTransaction: true}))
	res, err := svc.Reconcile(context.Background(), actor, "2024-05-01", []dto.StatusEntry{{EmployeeID: e.ID.String(), Status: "Absent"}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)
	assert.Empty(t, res.Errors)

	got := records(t, db)
	require.Len(t, got, 1)
	assert.Equal(t, model.StatusAbsent, got[0].Status)
}

func TestReconcileEmployeeDeletedBeforeInsert(t *testing.T) {
	db := dbtest.Open(t)
	e := seedEmployee(t, db, "Ana", "E1")

	beforeFirstRecordCreate(t, db, func() {
		other := db.Session(&gorm.Session{NewDB: true, SkipDefaultTransaction: true})
		require.NoError(t, other.Delete(&employeeModel.EmployeeModel{}, "id = ?", e.ID).Error)
	})

	svc := NewRecordService(db.Session(&gorm.Session{SkipDefaultTransaction: true}))
	res, err := svc.Reconcile(context.Background(), actor, "2024-05-01", []dto.StatusEntry{{EmployeeID: e.ID.String(), Status: "Present"}})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Applied)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, e.ID.String(), res.Errors[0].EmployeeID)
	assert.Equal(t, "employee not found", res.Errors[0].Reason)
	assert.Empty(t, records(t, db))
}

func TestReconcileCollapsesRepeatedEmployee(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewRecordService(db)
	e := seedEmployee(t, db, "Ana", "E1")

	writes := 0
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:count_updates", func(*gorm.DB) { writes++ }))
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:count_creates", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*model.AttendanceRecordModel); ok {
			writes++
		}
	}))

	res, err := svc.Reconcile(context.Background(), actor, "2024-05-01", []dto.StatusEntry{
		{EmployeeID: e.ID.String(), Status: "Present"},
		{EmployeeID: strings.ToUpper(e.ID.String()), Status: "Absent"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)
	assert.Equal(t, 1, writes)

	got := records(t, db)
	require.Len(t, got, 1)
	assert.Equal(t, model.StatusAbsent, got[0].Status)
}

func TestCollapseEntriesKeepsFirstPositionLastValue(t *testing.T) {
	a, b := uuid.NewString(), uuid.NewString()
	got := collapseEntries([]dto.StatusEntry{
		{EmployeeID: a, Status: "Present"},
		{EmployeeID: b, Status: "Leave"},
		{EmployeeID: " " + a + " ", Status: ""},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "", got[0].Status)
	assert.Equal(t, "Leave", got[1].Status)
}

func TestDaySheet(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewRecordService(db)
	b := seedEmployee(t, db, "Budi", "E2")
	a := seedEmployee(t, db, "Ana", "E1")

	_, err := svc.Reconcile(context.Background(), actor, "2024-05-01", []dto.StatusEntry{{EmployeeID: b.ID.String(), Status: "Absent"}})
	require.NoError(t, err)

	sheet, err := svc.DaySheet(context.Background(), "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", sheet.Date)
	require.Len(t, sheet.Employees, 2)
	assert.Equal(t, a.ID, sheet.Employees[0].Employee.ID)
	assert.Equal(t, "", sheet.Employees[0].Status)
	assert.Equal(t, "Absent", sheet.Employees[1].Status)
	assert.Equal(t, []string{"Present", "Absent", "Leave", "Holiday"}, sheet.Statuses)

	_, err = svc.DaySheet(context.Background(), "yesterday")
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}
