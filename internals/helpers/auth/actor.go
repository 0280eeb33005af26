package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys filled by the JWT middleware.
const (
	LocUserID    = "user_id"   // string
	LocUserName  = "user_name" // string
	LocRole      = "userRole"  // string
	LocRawToken  = "raw_token" // string
	LocJWTClaims = "jwt_claims"
)

// Actor is the authenticated caller, passed explicitly into services.
type Actor struct {
	UserID   uuid.UUID
	UserName string
	Role     string
}

func (a Actor) IsAdmin() bool { return a.Role == "admin" }

// GetUserIDFromToken reads c.Locals("user_id").
// 401 when missing, 400 when malformed.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}

	var s string
	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		return t, nil
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id in token")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id in token")
	}
	return id, nil
}

func ActorFromCtx(c *fiber.Ctx) (Actor, error) {
	id, err := GetUserIDFromToken(c)
	if err != nil {
		return Actor{}, err
	}
	a := Actor{UserID: id}
	if s, ok := c.Locals(LocUserName).(string); ok {
		a.UserName = s
	}
	if s, ok := c.Locals(LocRole).(string); ok {
		a.Role = s
	}
	return a, nil
}

// RawToken returns the bearer token the request authenticated with.
func RawToken(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRawToken).(string); ok && s != "" {
		return s
	}
	return ExtractToken(c, true)
}

// ExtractToken reads Authorization: Bearer, falling back to the access_token cookie.
func ExtractToken(c *fiber.Ctx, allowCookie bool) string {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if fields := strings.Fields(authz); len(fields) == 2 && strings.EqualFold(fields[0], "bearer") {
		return strings.Trim(fields[1], "\"'")
	}
	if allowCookie {
		return strings.TrimSpace(c.Cookies("access_token"))
	}
	return ""
}
