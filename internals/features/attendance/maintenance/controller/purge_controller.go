package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"attendance_backend/internals/features/attendance/maintenance/service"
	helper "attendance_backend/internals/helpers"
	helperAuth "attendance_backend/internals/helpers/auth"
)

type PurgeRequest struct {
	Confirm bool `json:"confirm"`
}

type MaintenanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMaintenanceController(db *gorm.DB, v *validator.Validate) *MaintenanceController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &MaintenanceController{DB: db, Validator: v}
}

/* ============================================
   POST /api/a/maintenance/purge  {"confirm": true}
============================================ */

func (ctl *MaintenanceController) Purge(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromCtx(c)
	if err != nil {
		return err
	}

	var req PurgeRequest
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return helper.FromError(c, err)
	}

	res, err := service.Purge(c.UserContext(), ctl.DB, req.Confirm)
	if err != nil {
		return helper.FromError(c, err)
	}
	log.Printf("[PURGE] requested by %s (%s)", actor.UserName, actor.UserID)
	return helper.JsonDeleted(c, "All employees and attendance removed", res)
}
