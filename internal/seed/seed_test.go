package seed

import (
	"testing"

	"nnrgconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Connection{}))
	return db
}

func TestFactoryCreateStudent(t *testing.T) {
	db := setupSeedDB(t)
	factory, err := NewFactory(db)
	require.NoError(t, err)

	student, err := factory.CreateStudent()
	require.NoError(t, err)
	assert.NotEmpty(t, student.ID)
	assert.True(t, student.IsApproved)
	assert.False(t, student.IsAdmin)
	assert.NotNil(t, student.ApprovedAt)
	assert.Contains(t, student.Email, "@nnrg.edu.in")

	pending, err := factory.CreatePendingStudent()
	require.NoError(t, err)
	assert.False(t, pending.IsApproved)
	assert.Nil(t, pending.ApprovedAt)

	admin, err := factory.CreateAdmin("admin@nnrg.edu.in")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "admin@nnrg.edu.in", admin.Email)
}

func TestFactoryCreateConnectionCanonical(t *testing.T) {
	db := setupSeedDB(t)
	factory, err := NewFactory(db)
	require.NoError(t, err)

	a, err := factory.CreateStudent()
	require.NoError(t, err)
	b, err := factory.CreateStudent()
	require.NoError(t, err)

	conn, err := factory.CreateConnection(b, a)
	require.NoError(t, err)
	assert.Less(t, conn.UserLowID, conn.UserHighID)
}

func TestSeederRun(t *testing.T) {
	db := setupSeedDB(t)
	seeder := NewSeeder(db)

	students, err := seeder.Run(Options{
		NumStudents:    10,
		NumPending:     3,
		NumConnections: 5,
		AdminEmail:     "admin@nnrg.edu.in",
		ShouldClean:    true,
	})
	require.NoError(t, err)
	assert.Len(t, students, 10)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(14), userCount)

	var pendingCount int64
	require.NoError(t, db.Model(&models.User{}).Where("is_approved = ?", false).Count(&pendingCount).Error)
	assert.Equal(t, int64(3), pendingCount)

	var connCount int64
	require.NoError(t, db.Model(&models.Connection{}).Count(&connCount).Error)
	assert.Equal(t, int64(5), connCount)
}

func TestSeederClearAll(t *testing.T) {
	db := setupSeedDB(t)
	seeder := NewSeeder(db)

	_, err := seeder.Run(Options{NumStudents: 4, NumConnections: 2})
	require.NoError(t, err)
	require.NoError(t, seeder.ClearAll())

	var userCount, connCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Connection{}).Count(&connCount).Error)
	assert.Zero(t, userCount)
	assert.Zero(t, connCount)
}
