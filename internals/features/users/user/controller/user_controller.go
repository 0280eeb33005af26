package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authDto "attendance_backend/internals/features/users/auth/dto"
	"attendance_backend/internals/features/users/user/dto"
	"attendance_backend/internals/features/users/user/service"
	helper "attendance_backend/internals/helpers"
	"attendance_backend/internals/helpers/apperror"
	helperAuth "attendance_backend/internals/helpers/auth"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: helper.NewValidator(), Service: service.NewUserService(db)}
}

// GET /api/a/users?q=&role=&page=&per_page=
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)
	users, total, err := uc.Service.List(c.UserContext(), c.Query("q"), c.Query("role"), p)
	if err != nil {
		return helper.FromError(c, err)
	}
	pg := helper.BuildPagination(total, p)
	return helper.JsonList(c, "Users fetched successfully", dto.FromModels(users), &pg)
}

// PATCH /api/a/users/:id
func (uc *UserController) UpdateAccess(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.FromError(c, apperror.Validation("invalid user id"))
	}

	var req dto.UpdateAccessRequest
	if err := helper.BindAndValidate(c, uc.Validator, &req); err != nil {
		return helper.FromError(c, err)
	}

	u, err := uc.Service.UpdateAccess(c.UserContext(), actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "User updated", authDto.FromUser(*u))
}

// PATCH /api/u/users/me/profile
func (uc *UserController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := helper.BindAndValidate(c, uc.Validator, &req); err != nil {
		return helper.FromError(c, err)
	}

	u, err := uc.Service.UpdateProfile(c.UserContext(), userID, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Profile updated", authDto.FromUser(*u))
}
