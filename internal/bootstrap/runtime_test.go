package bootstrap

import (
	"testing"

	"nnrgconnect/internal/config"
	"nnrgconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupBootstrapDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Connection{}))
	return db
}

func TestEnsureAdminAccountCreates(t *testing.T) {
	db := setupBootstrapDB(t)
	cfg := &config.Config{AdminEmail: "Admin@NNRG.edu.in", AdminPassword: "super-secret"}

	require.NoError(t, EnsureAdminAccount(cfg, db))

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@nnrg.edu.in").First(&admin).Error)
	assert.True(t, admin.IsAdmin)
	assert.True(t, admin.IsApproved)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("super-secret")))
}

func TestEnsureAdminAccountIdempotent(t *testing.T) {
	db := setupBootstrapDB(t)
	cfg := &config.Config{AdminEmail: "admin@nnrg.edu.in", AdminPassword: "super-secret"}

	require.NoError(t, EnsureAdminAccount(cfg, db))
	require.NoError(t, EnsureAdminAccount(cfg, db))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnsureAdminAccountSkipsWithoutPassword(t *testing.T) {
	db := setupBootstrapDB(t)
	cfg := &config.Config{AdminEmail: "admin@nnrg.edu.in"}

	require.NoError(t, EnsureAdminAccount(cfg, db))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEnsureAdminAccountRejectsNonAdminCollision(t *testing.T) {
	db := setupBootstrapDB(t)
	student := &models.User{
		FullName: "Student", Email: "admin@nnrg.edu.in", PhoneNumber: "9000000000",
		RollNumber: "20R01A0501", Branch: "CSE", AcademicYear: "3",
		Password: "x", CollegeIDCardImage: "/uploads/id_cards/x.png",
	}
	require.NoError(t, db.Create(student).Error)

	cfg := &config.Config{AdminEmail: "admin@nnrg.edu.in", AdminPassword: "super-secret"}
	assert.Error(t, EnsureAdminAccount(cfg, db))
}
