package service

import (
	"context"
	"strings"

	"nnrgconnect/internal/models"
	"nnrgconnect/internal/repository"
)

// DirectoryService exposes peer search and discovery over approved
// users, always through the visibility projection.
type DirectoryService struct {
	userRepo repository.UserRepository
}

// NewDirectoryService returns a new DirectoryService.
func NewDirectoryService(userRepo repository.UserRepository) *DirectoryService {
	return &DirectoryService{userRepo: userRepo}
}

// Search finds approved peers by name or roll number substring.
func (s *DirectoryService) Search(ctx context.Context, userID, query, searchType string) ([]models.PublicProfile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	if searchType != repository.SearchFieldName && searchType != repository.SearchFieldRollNumber {
		return nil, models.NewValidationError("Search type must be 'name' or 'rollNumber'")
	}

	users, err := s.userRepo.Search(ctx, searchType, query, userID)
	if err != nil {
		return nil, err
	}
	return project(users), nil
}

// Suggest returns a small random sample of approved peers.
func (s *DirectoryService) Suggest(ctx context.Context, userID string) ([]models.PublicProfile, error) {
	users, err := s.userRepo.Suggest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return project(users), nil
}

func project(users []models.User) []models.PublicProfile {
	profiles := make([]models.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].PublicProfile())
	}
	return profiles
}
