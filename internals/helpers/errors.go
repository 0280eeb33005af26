package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"attendance_backend/internals/helpers/apperror"
)

// FromError writes err as the standard error envelope. It doubles as fiber's ErrorHandler.
func FromError(c *fiber.Ctx, err error) error {
	var ae *apperror.Error
	if errors.As(err, &ae) {
		if len(ae.Fields) > 0 {
			return JsonValidationError(c, ae.Fields)
		}
		if ae.Kind == apperror.KindInternal {
			log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
		}
		return JsonError(c, ae.HTTPStatus(), ae.Message)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "internal server error")
}
