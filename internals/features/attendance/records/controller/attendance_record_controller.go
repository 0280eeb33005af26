package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"attendance_backend/internals/features/attendance/records/dto"
	"attendance_backend/internals/features/attendance/records/service"
	helper "attendance_backend/internals/helpers"
	"attendance_backend/internals/helpers/apperror"
	helperAuth "attendance_backend/internals/helpers/auth"
	"attendance_backend/internals/helpers/dbtime"
)

const formStatusPrefix = "status_"

type AttendanceRecordController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.RecordService
}

func NewAttendanceRecordController(db *gorm.DB, v *validator.Validate) *AttendanceRecordController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &AttendanceRecordController{DB: db, Validator: v, Service: service.NewRecordService(db)}
}

/* ============================================
   DAY SHEET
   GET /api/u/attendance?date=YYYY-MM-DD (default: today)
============================================ */

func (ctl *AttendanceRecordController) DaySheet(c *fiber.Ctx) error {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = dbtime.Today().Format(dbtime.DateLayout)
	}
	sheet, err := ctl.Service.DaySheet(c.UserContext(), date)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Attendance sheet loaded", sheet)
}

/* ============================================
   RECONCILE
   POST /api/u/attendance
   JSON: {"date": "...", "entries": [{"employee_id": "...", "status": "..."}]}
   form: date=...&status_<employee_id>=...
============================================ */

func (ctl *AttendanceRecordController) Reconcile(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.ReconcileRequest
	if isForm(c) {
		req = requestFromForm(c)
		if err := ctl.Validator.Struct(&req); err != nil {
			return helper.FromError(c, apperror.FromValidator(err))
		}
	} else if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return helper.FromError(c, err)
	}
	req.Normalize()

	res, err := ctl.Service.Reconcile(c.UserContext(), actor, req.Date, req.Entries)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Attendance saved", res)
}

func isForm(c *fiber.Ctx) bool {
	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	return strings.HasPrefix(ct, fiber.MIMEApplicationForm)
}

// requestFromForm keeps the order in which the fields were posted.
func requestFromForm(c *fiber.Ctx) dto.ReconcileRequest {
	req := dto.ReconcileRequest{Date: c.FormValue("date")}
	collect := func(key, value []byte) {
		k := string(key)
		if !strings.HasPrefix(k, formStatusPrefix) {
			return
		}
		req.Entries = append(req.Entries, dto.StatusEntry{
			EmployeeID: strings.TrimPrefix(k, formStatusPrefix),
			Status:     string(value),
		})
	}
	c.Request().PostArgs().VisitAll(collect)
	return req
}
