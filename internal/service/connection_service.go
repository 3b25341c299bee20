package service

import (
	"context"

	"nnrgconnect/internal/models"
	"nnrgconnect/internal/repository"
	"nnrgconnect/internal/validation"
)

// ConnectionService manages the undirected connection edges between
// approved users.
type ConnectionService struct {
	connRepo repository.ConnectionRepository
	userRepo repository.UserRepository
}

// NewConnectionService returns a new ConnectionService.
func NewConnectionService(connRepo repository.ConnectionRepository, userRepo repository.UserRepository) *ConnectionService {
	return &ConnectionService{connRepo: connRepo, userRepo: userRepo}
}

// ConnectionEntry is one resolved edge in a user's connection list.
type ConnectionEntry struct {
	ConnectionID string                   `json:"connectionId"`
	ConnectedAt  string                   `json:"connectedAt"`
	User         models.ConnectionProfile `json:"user"`
}

// ConnectionStatus describes whether an edge exists with a target user.
type ConnectionStatus struct {
	Connected    bool   `json:"connected"`
	ConnectionID string `json:"connectionId,omitempty"`
	ConnectedAt  string `json:"connectedAt,omitempty"`
}

// Connect creates the edge between the caller and the target. The edge
// is stored once under the canonical (low, high) key regardless of who
// initiated it.
func (s *ConnectionService) Connect(ctx context.Context, userID, targetUserID string) (*models.Connection, error) {
	if err := validation.ValidateUserID(targetUserID); err != nil {
		return nil, models.NewValidationError("Invalid target user ID")
	}
	if userID == targetUserID {
		return nil, models.NewValidationError("Cannot connect with yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	low, high := models.OrderPair(userID, targetUserID)
	existing, err := s.connRepo.GetByPair(ctx, low, high)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, models.NewConflictError("Connection already exists")
	}

	conn := &models.Connection{UserLowID: low, UserHighID: high}
	if err := s.connRepo.Create(ctx, conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// ListFor returns every connection touching the user, each resolved to
// the other member's reduced profile.
func (s *ConnectionService) ListFor(ctx context.Context, userID string) ([]ConnectionEntry, error) {
	conns, err := s.connRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]ConnectionEntry, 0, len(conns))
	for _, conn := range conns {
		other := conn.UserLow
		if conn.UserLowID == userID {
			other = conn.UserHigh
		}
		entries = append(entries, ConnectionEntry{
			ConnectionID: conn.ID,
			ConnectedAt:  conn.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
			User:         other.ConnectionProfile(),
		})
	}
	return entries, nil
}

// StatusOf reports whether the caller is connected to the target user.
func (s *ConnectionService) StatusOf(ctx context.Context, userID, targetUserID string) (*ConnectionStatus, error) {
	if err := validation.ValidateUserID(targetUserID); err != nil {
		return nil, models.NewValidationError("Invalid target user ID")
	}

	low, high := models.OrderPair(userID, targetUserID)
	conn, err := s.connRepo.GetByPair(ctx, low, high)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return &ConnectionStatus{Connected: false}, nil
	}
	return &ConnectionStatus{
		Connected:    true,
		ConnectionID: conn.ID,
		ConnectedAt:  conn.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
	}, nil
}

// BulkStatusOf maps every requested user ID to whether an edge with the
// caller exists. Duplicates collapse; every requested ID appears in the
// result exactly once.
func (s *ConnectionService) BulkStatusOf(ctx context.Context, userID string, targetIDs []string) (map[string]bool, error) {
	if len(targetIDs) == 0 {
		return nil, models.NewValidationError("userIds must be a non-empty list")
	}

	unique := make([]string, 0, len(targetIDs))
	seen := make(map[string]struct{}, len(targetIDs))
	for _, id := range targetIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	conns, err := s.connRepo.ListBetween(ctx, userID, unique)
	if err != nil {
		return nil, err
	}

	connected := make(map[string]struct{}, len(conns))
	for _, conn := range conns {
		connected[conn.OtherUserID(userID)] = struct{}{}
	}

	result := make(map[string]bool, len(unique))
	for _, id := range unique {
		_, ok := connected[id]
		result[id] = ok
	}
	return result, nil
}
