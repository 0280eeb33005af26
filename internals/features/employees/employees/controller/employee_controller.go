package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"attendance_backend/internals/features/employees/employees/dto"
	"attendance_backend/internals/features/employees/employees/service"
	helper "attendance_backend/internals/helpers"
	"attendance_backend/internals/helpers/apperror"
	helperAuth "attendance_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type EmployeeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.EmployeeService
}

func NewEmployeeController(db *gorm.DB, v *validator.Validate) *EmployeeController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &EmployeeController{DB: db, Validator: v, Service: service.NewEmployeeService(db, v)}
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid employee id")
	}
	return id, nil
}

/* ============================================
   LIST
   GET /api/u/employees?q=&page=&per_page=
============================================ */

func (ctl *EmployeeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)
	list, total, err := ctl.Service.List(c.UserContext(), c.Query("q"), p)
	if err != nil {
		return helper.FromError(c, err)
	}
	pg := helper.BuildPagination(total, p)
	return helper.JsonList(c, "Employees loaded", dto.FromModels(list), &pg)
}

/* ============================================
   CREATE
   POST /api/u/employees
============================================ */

func (ctl *EmployeeController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateEmployeeRequest
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return helper.FromError(c, err)
	}

	ent, err := ctl.Service.Create(c.UserContext(), actor, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Employee created", dto.FromModel(*ent))
}

/* ============================================
   GET
   GET /api/u/employees/:id
============================================ */

func (ctl *EmployeeController) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	ent, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Employee loaded", dto.FromModel(*ent))
}

/* ============================================
   UPDATE
   PUT /api/u/employees/:id
============================================ */

func (ctl *EmployeeController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.UpdateEmployeeRequest
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return helper.FromError(c, err)
	}

	ent, err := ctl.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Employee updated", dto.FromModel(*ent))
}

/* ============================================
   DELETE
   DELETE /api/u/employees/:id
============================================ */

func (ctl *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Employee deleted", fiber.Map{"id": id})
}
