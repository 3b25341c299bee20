// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"nnrgconnect/internal/cache"
	"nnrgconnect/internal/models"

	"gorm.io/gorm"
)

// SearchFieldName and SearchFieldRollNumber select which column a
// directory search matches against.
const (
	SearchFieldName       = "name"
	SearchFieldRollNumber = "rollNumber"
)

const (
	searchLimit  = 20
	suggestLimit = 5
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByRollNumber(ctx context.Context, rollNumber string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	ListPending(ctx context.Context) ([]models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	Search(ctx context.Context, field, query, excludeID string) ([]models.User, error)
	Suggest(ctx context.Context, excludeID string) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("roll_number = ?", rollNumber).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User with this email or roll number already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User with this email or roll number already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

// ListPending returns unapproved signups, newest first, for the admin
// review queue.
func (r *userRepository) ListPending(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("is_approved = ? AND is_admin = ?", false, false).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// ListAll returns every account, newest first.
func (r *userRepository) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// Search matches approved users by case-insensitive substring on the
// selected field, excluding the requester.
func (r *userRepository) Search(ctx context.Context, field, query, excludeID string) ([]models.User, error) {
	column := "full_name"
	if field == SearchFieldRollNumber {
		column = "roll_number"
	}
	pattern := "%" + strings.ToLower(query) + "%"

	var users []models.User
	err := r.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Where("id <> ?", excludeID).
		Where("LOWER("+column+") LIKE ?", pattern).
		Limit(searchLimit).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// Suggest returns a random sample of approved users other than the
// requester.
func (r *userRepository) Suggest(ctx context.Context, excludeID string) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Where("id <> ?", excludeID).
		Order("RANDOM()").
		Limit(suggestLimit).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505, plus the sqlite wording
	// used by the tests.
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
