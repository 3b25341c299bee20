// Package service implements the application's business logic on top of
// the repository layer.
package service

import (
	"context"
	"time"

	"nnrgconnect/internal/models"
	"nnrgconnect/internal/repository"
	"nnrgconnect/internal/storage"
)

// AdminService handles the signup approval workflow.
type AdminService struct {
	userRepo repository.UserRepository
	store    *storage.Store
}

// NewAdminService returns a new AdminService.
func NewAdminService(userRepo repository.UserRepository, store *storage.Store) *AdminService {
	return &AdminService{userRepo: userRepo, store: store}
}

// ListPending returns signups awaiting review, newest first.
func (s *AdminService) ListPending(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListPending(ctx)
}

// ListAllUsers returns every account for the admin directory view.
func (s *AdminService) ListAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListAll(ctx)
}

// Approve marks a pending signup as approved and records who approved
// it and when. Approving twice is a conflict.
func (s *AdminService) Approve(ctx context.Context, adminID, targetID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user.IsApproved {
		return nil, models.NewConflictError("User is already approved")
	}

	now := time.Now().UTC()
	user.IsApproved = true
	user.ApprovedAt = &now
	user.ApprovedBy = &adminID
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Reject removes a pending signup entirely and deletes the uploaded ID
// card. An approved account cannot be rejected.
func (s *AdminService) Reject(ctx context.Context, targetID string) error {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user.IsApproved {
		return models.NewConflictError("Cannot reject an approved user")
	}

	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return err
	}
	s.store.DeleteQuietly(user.CollegeIDCardImage)
	return nil
}
