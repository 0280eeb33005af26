// Command manage runs one-off administrative tasks against the configured database.
//
//	manage migrate
//	manage purge --yes
//	manage create-admin --username root --password secret123
//	manage seed --dir internals/seeds
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"attendance_backend/internals/configs"
	database "attendance_backend/internals/databases"
	maintenanceService "attendance_backend/internals/features/attendance/maintenance/service"
	authService "attendance_backend/internals/features/users/auth/service"
	"attendance_backend/internals/seeds"
)

const usage = `usage: manage <command> [flags]

commands:
  migrate                                  create or update the schema
  purge --yes                              delete ALL employees and attendance records
  create-admin --username U --password P   create an admin or promote an existing user
  seed [--dir D]                           load demo users and employees from JSON fixtures
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	configs.LoadEnv()
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func run(ctx context.Context, cfg *configs.Config, cmd string, args []string) error {
	switch cmd {
	case "migrate":
		return withDB(cfg, func(db *gorm.DB) error { return database.Migrate(db) })

	case "purge":
		fs := flag.NewFlagSet("purge", flag.ExitOnError)
		yes := fs.Bool("yes", false, "confirm deletion of every employee and attendance record")
		_ = fs.Parse(args)
		return withDB(cfg, func(db *gorm.DB) error {
			res, err := maintenanceService.Purge(ctx, db, *yes)
			if err != nil {
				if *yes {
					return err
				}
				return fmt.Errorf("%w (re-run with --yes)", err)
			}
			log.Printf("✅ Deleted %d attendance records and %d employees", res.Attendance, res.Employees)
			return nil
		})

	case "create-admin":
		fs := flag.NewFlagSet("create-admin", flag.ExitOnError)
		username := fs.String("username", "", "admin user name")
		password := fs.String("password", "", "password (min 8 chars; optional when promoting)")
		_ = fs.Parse(args)
		return withDB(cfg, func(db *gorm.DB) error {
			if err := database.Migrate(db); err != nil {
				return err
			}
			svc := authService.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.TTL)
			user, created, err := svc.CreateOrPromoteAdmin(ctx, *username, *password)
			if err != nil {
				return err
			}
			if created {
				log.Printf("✅ Admin %s created", user.UserName)
			} else {
				log.Printf("✅ %s promoted to admin", user.UserName)
			}
			return nil
		})

	case "seed":
		fs := flag.NewFlagSet("seed", flag.ExitOnError)
		dir := fs.String("dir", "internals/seeds", "directory holding the seed fixtures")
		_ = fs.Parse(args)
		return withDB(cfg, func(db *gorm.DB) error {
			if err := database.Migrate(db); err != nil {
				return err
			}
			return seeds.RunAllSeeds(db, *dir)
		})

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}
