package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"attendance_backend/internals/configs"
	helperAuth "attendance_backend/internals/helpers/auth"
	authMiddleware "attendance_backend/internals/middlewares/auth"
	routeDetails "attendance_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	startTime = time.Now()

	BaseRoutes(app, db, cfg.Env)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, cfg)

	// ===================== GROUPS =====================
	requireAuth := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              cfg.JWT.Secret,
		BlacklistChecker:    helperAuth.BlacklistChecker(db, cfg.JWT.Secret),
		AllowCookieFallback: true,
	})

	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u", requireAuth)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", requireAuth)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserUserRoutes(private, db)
	routeDetails.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Employee routes...")
	routeDetails.EmployeeUserRoutes(private, db)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceUserRoutes(private, db)
	routeDetails.AttendanceAdminRoutes(admin, db)
}
