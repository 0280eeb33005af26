package dberr

import (
	"errors"
	"fmt"
	"testing"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"pgconn unique", &pgconn.PgError{Code: "23505"}, true},
		{"pgconn other", &pgconn.PgError{Code: "23503"}, false},
		{"mysql 1062", &mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"mysql other", &mysqlDriver.MySQLError{Number: 1452}, false},
		{"message fallback", errors.New(`ERROR: duplicate key value violates unique constraint "uq"`), true},
		{"unrelated", errors.New("connection reset"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateKey(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrForeignKeyViolated, true},
		{"pgconn fk", &pgconn.PgError{Code: "23503"}, true},
		{"mysql 1452", &mysqlDriver.MySQLError{Number: 1452}, true},
		{"mysql 1062", &mysqlDriver.MySQLError{Number: 1062}, false},
		{"message fallback", errors.New("FOREIGN KEY constraint failed"), true},
		{"unrelated", errors.New("timeout"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsForeignKeyViolation(tt.err))
		})
	}
}

type parent struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex"`
}

type child struct {
	ID       uint `gorm:"primaryKey"`
	ParentID uint
	Parent   *parent `gorm:"constraint:OnDelete:CASCADE"`
}

// raw sqlite3 errors, without gorm's translation
func TestSQLiteDriverErrors(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:dberr_raw?mode=memory&cache=shared&_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, db.AutoMigrate(&parent{}, &child{}))
	require.NoError(t, db.Create(&parent{Code: "A"}).Error)

	dupErr := db.Create(&parent{Code: "A"}).Error
	require.Error(t, dupErr)
	assert.True(t, IsDuplicateKey(dupErr), dupErr.Error())
	assert.False(t, IsForeignKeyViolation(dupErr))

	fkErr := db.Create(&child{ParentID: 999}).Error
	require.Error(t, fkErr)
	assert.True(t, IsForeignKeyViolation(fkErr), fkErr.Error())
	assert.False(t, IsDuplicateKey(fkErr))
}
