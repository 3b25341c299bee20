package repository

import (
	"context"
	"errors"

	"nnrgconnect/internal/models"
	"nnrgconnect/internal/observability"

	"gorm.io/gorm"
)

// ConnectionRepository defines persistence operations for connection
// edges. All pair lookups expect the canonical (low, high) ordering.
type ConnectionRepository interface {
	Create(ctx context.Context, conn *models.Connection) error
	GetByPair(ctx context.Context, lowID, highID string) (*models.Connection, error)
	ListForUser(ctx context.Context, userID string) ([]models.Connection, error)
	ListBetween(ctx context.Context, userID string, targetIDs []string) ([]models.Connection, error)
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository returns a new ConnectionRepository implementation.
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	if err := r.db.WithContext(ctx).Create(conn).Error; err != nil {
		if isUniqueConstraintError(err) {
			// Two concurrent requests for the same pair race past the
			// existence check; the unique index on (low, high) decides.
			return models.NewConflictError("Connection already exists")
		}
		return models.NewInternalError(err)
	}
	observability.ConnectionsCreated.Inc()
	return nil
}

func (r *connectionRepository) GetByPair(ctx context.Context, lowID, highID string) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ?", lowID, highID).
		First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

func (r *connectionRepository) ListForUser(ctx context.Context, userID string) ([]models.Connection, error) {
	var conns []models.Connection
	err := r.db.WithContext(ctx).
		Where("user_low_id = ? OR user_high_id = ?", userID, userID).
		Preload("UserLow").
		Preload("UserHigh").
		Order("created_at DESC").
		Find(&conns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

// ListBetween fetches every edge between userID and any of targetIDs in
// a single query, covering both orientations.
func (r *connectionRepository) ListBetween(ctx context.Context, userID string, targetIDs []string) ([]models.Connection, error) {
	if len(targetIDs) == 0 {
		return nil, nil
	}

	var conns []models.Connection
	err := r.db.WithContext(ctx).
		Where("(user_low_id = ? AND user_high_id IN ?) OR (user_high_id = ? AND user_low_id IN ?)",
			userID, targetIDs, userID, targetIDs).
		Find(&conns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}
