package main

import (
	"gorm.io/gorm"

	"attendance_backend/internals/configs"
	database "attendance_backend/internals/databases"
)

func withDB(cfg *configs.Config, fn func(db *gorm.DB) error) error {
	db, err := database.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer database.Close(db)
	database.TunePool(db, cfg.DB)
	return fn(db)
}
