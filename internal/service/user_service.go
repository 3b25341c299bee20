package service

import (
	"context"
	"strings"

	"nnrgconnect/internal/models"
	"nnrgconnect/internal/repository"
	"nnrgconnect/internal/storage"
	"nnrgconnect/internal/validation"
)

// UserService handles a user's own account and profile settings.
type UserService struct {
	userRepo repository.UserRepository
	store    *storage.Store
}

// UpdateProfileInput carries the optional profile changes. Boolean
// fields arrive as "true"/"false" form strings and stay empty when the
// client did not send them.
type UpdateProfileInput struct {
	UserID               string
	LinkedinProfileURL   *string
	DisplayEmail         string
	DisplayContactNumber string
	PictureFilename      string
	PictureContent       []byte
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, store *storage.Store) *UserService {
	return &UserService{userRepo: userRepo, store: store}
}

// Me returns the caller's own record.
func (s *UserService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the provided changes. A new profile picture
// replaces the stored file; the old one is deleted best effort.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.LinkedinProfileURL != nil {
		url := strings.TrimSpace(*in.LinkedinProfileURL)
		if url != "" {
			if err := validation.ValidateLinkedinURL(url); err != nil {
				return nil, models.NewValidationError(err.Error())
			}
		}
		user.LinkedinProfileURL = url
	}

	if in.DisplayEmail != "" {
		flag, err := parseFormBool(in.DisplayEmail)
		if err != nil {
			return nil, models.NewValidationError("displayEmail must be 'true' or 'false'")
		}
		user.DisplayEmail = flag
	}
	if in.DisplayContactNumber != "" {
		flag, err := parseFormBool(in.DisplayContactNumber)
		if err != nil {
			return nil, models.NewValidationError("displayContactNumber must be 'true' or 'false'")
		}
		user.DisplayContactNumber = flag
	}

	oldPicture := ""
	newPicture := ""
	if len(in.PictureContent) > 0 {
		path, err := s.store.Save(storage.KindProfilePic, in.PictureFilename, in.PictureContent)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		oldPicture = user.ProfilePictureURL
		newPicture = path
		user.ProfilePictureURL = path
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if newPicture != "" {
			s.store.DeleteQuietly(newPicture)
		}
		return nil, err
	}

	if newPicture != "" && oldPicture != "" {
		s.store.DeleteQuietly(oldPicture)
	}
	return user, nil
}

func parseFormBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, models.NewValidationError("invalid boolean")
	}
}
