// Package bootstrap wires up shared runtime dependencies for the
// server and CLI commands.
package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"nnrgconnect/internal/cache"
	"nnrgconnect/internal/config"
	"nnrgconnect/internal/database"
	"nnrgconnect/internal/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitRuntime connects to the database and Redis and provisions the
// admin account when configured. The Redis client may be nil if the
// cache is unreachable.
func InitRuntime(cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := EnsureAdminAccount(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("admin bootstrap failed: %w", err)
	}

	return db, r, nil
}

// EnsureAdminAccount creates the configured admin user if it does not
// exist yet. A no-op when ADMIN_PASSWORD is unset so a plain dev setup
// never creates a privileged account with a guessable password.
func EnsureAdminAccount(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.Where("LOWER(email) = ?", email).First(&existing).Error
	if err == nil {
		if !existing.IsAdmin {
			return fmt.Errorf("account %s exists but is not an admin", email)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("looking up admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := &models.User{
		FullName:           "NNRG Admin",
		Email:              email,
		PhoneNumber:        "0000000000",
		RollNumber:         "ADMIN-001",
		Branch:             "ADMIN",
		AcademicYear:       "0",
		Password:           string(hash),
		CollegeIDCardImage: "admin",
		IsApproved:         true,
		IsAdmin:            true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("creating admin account: %w", err)
	}
	log.Printf("Created admin account %s", email)
	return nil
}
