package auth

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	helperAuth "attendance_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(ctx context.Context, rawToken string) (bool, error) // true if revoked
	AllowCookieFallback bool                                                     // use access_token cookie when no Bearer
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) token: Authorization: Bearer xxx (or cookie)
		raw := helperAuth.ExtractToken(c, o.AllowCookieFallback)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) blacklist
		if o.BlacklistChecker != nil {
			black, err := o.BlacklistChecker(c.UserContext(), raw)
			if err != nil {
				log.Printf("[ERROR] blacklist check: %v", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			if black {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
			}
		}

		// 3) parse + verify
		claims, err := helperAuth.ParseToken(secret, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}
		actor, err := claims.Actor()
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals(helperAuth.LocJWTClaims, claims)
		c.Locals(helperAuth.LocRawToken, raw)
		c.Locals(helperAuth.LocUserID, actor.UserID.String())
		c.Locals(helperAuth.LocUserName, actor.UserName)
		c.Locals(helperAuth.LocRole, actor.Role)

		return c.Next()
	}
}
