package controller

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"attendance_backend/internals/constants"
	"attendance_backend/internals/features/attendance/reports/export"
	"attendance_backend/internals/features/attendance/reports/service"
	helper "attendance_backend/internals/helpers"
	"attendance_backend/internals/helpers/apperror"
	"attendance_backend/internals/helpers/dbtime"
	"attendance_backend/internals/metrics"
)

type ReportController struct {
	DB      *gorm.DB
	Service *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Service: service.NewReportService(db)}
}

// month/year default to the current month when omitted
func monthYear(c *fiber.Ctx) (int, int, error) {
	m, y, err := dbtime.ResolveMonthYear(c.Query("month"), c.Query("year"))
	if err != nil {
		return 0, 0, apperror.Validation(err.Error())
	}
	return m, y, nil
}

/* ============================================
   GET /api/u/reports/attendance?month=&year=
============================================ */

func (ctl *ReportController) Monthly(c *fiber.Ctx) error {
	month, year, err := monthYear(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	report, err := ctl.Service.Monthly(c.UserContext(), month, year)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Attendance report loaded", report)
}

/* ============================================
   GET /api/u/reports/attendance/export?month=&year=&format=csv|xlsx
============================================ */

func (ctl *ReportController) Export(c *fiber.Ctx) error {
	month, year, err := monthYear(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	format, ok := constants.NormalizeExportFormat(c.Query("format"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "format must be csv or xlsx")
	}

	rows, err := ctl.Service.Summarize(c.UserContext(), month, year)
	if err != nil {
		return helper.FromError(c, err)
	}

	var body []byte
	if format == constants.ExportXLSX {
		body, err = export.ToXLSX(rows)
	} else {
		body, err = export.ToCSV(rows)
	}
	if err != nil {
		return helper.FromError(c, apperror.Internal("failed to render report", err))
	}
	metrics.ReportExportsTotal.WithLabelValues(format).Inc()

	c.Set(fiber.HeaderContentType, constants.ExportContentType(format))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, export.Filename(year, month, format)))
	return c.Status(fiber.StatusOK).Send(body)
}

/* ============================================
   GET /api/u/employees/:id/attendance?month=&year=
============================================ */

func (ctl *ReportController) EmployeeMonth(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.FromError(c, apperror.Validation("invalid employee id"))
	}
	month, year, err := monthYear(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	out, err := ctl.Service.EmployeeMonth(c.UserContext(), id, month, year)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Employee attendance loaded", out)
}
