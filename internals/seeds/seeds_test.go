package seeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"attendance_backend/internals/databases/dbtest"
	employeeModel "attendance_backend/internals/features/employees/employees/model"
	authHelper "attendance_backend/internals/features/users/auth/helper"
	userModel "attendance_backend/internals/features/users/user/model"
)

func TestRunAllSeedsIsRepeatable(t *testing.T) {
	authHelper.BcryptCost = bcrypt.MinCost
	db := dbtest.Open(t)

	require.NoError(t, RunAllSeeds(db, "."))
	require.NoError(t, RunAllSeeds(db, "."))

	var users, employees, profiles int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&users).Error)
	require.NoError(t, db.Model(&userModel.UsersProfileModel{}).Count(&profiles).Error)
	require.NoError(t, db.Model(&employeeModel.EmployeeModel{}).Count(&employees).Error)
	assert.EqualValues(t, 2, users)
	assert.EqualValues(t, 2, profiles)
	assert.EqualValues(t, 4, employees)

	var admin userModel.UserModel
	require.NoError(t, db.Where("user_name = ?", "admin").First(&admin).Error)
	assert.Equal(t, userModel.RoleAdmin, admin.Role)
	assert.NoError(t, authHelper.CheckPasswordHash(admin.Password, "admin12345"))
}

func TestRunAllSeedsMissingDir(t *testing.T) {
	assert.Error(t, RunAllSeeds(dbtest.Open(t), t.TempDir()))
}
