package server

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"nnrgconnect/internal/models"
	"nnrgconnect/internal/storage"

	"github.com/gofiber/fiber/v2"
)

const (
	maxIDCardSizeBytes     = 5 * 1024 * 1024
	maxProfilePicSizeBytes = 2 * 1024 * 1024
	maxResumeSizeBytes     = 5 * 1024 * 1024
)

// respondServiceError maps an AppError code to its HTTP status and
// writes the response. Unknown errors become a 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case models.CodeValidation:
		status = fiber.StatusBadRequest
	case models.CodeNotFound:
		status = fiber.StatusNotFound
	case models.CodeUnauthorized:
		status = fiber.StatusUnauthorized
	case models.CodeForbidden:
		status = fiber.StatusForbidden
	case models.CodeConflict:
		status = fiber.StatusConflict
	case models.CodeUpstream:
		// The upstream failure is the client's problem to retry, but
		// it is still our 500.
		status = fiber.StatusInternalServerError
	}
	return models.RespondWithError(c, status, appErr)
}

// currentUserID returns the authenticated user's ID stored by AuthRequired.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}

// readFormFile loads a multipart file into memory, enforcing the size
// limit before reading.
func readFormFile(header *multipart.FileHeader, maxSize int64) ([]byte, error) {
	if header.Size > maxSize {
		return nil, models.NewValidationError("File is too large")
	}

	file, err := header.Open()
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if int64(len(content)) > maxSize {
		return nil, models.NewValidationError("File is too large")
	}
	return content, nil
}

// readImageUpload loads and sniffs a multipart image upload.
func readImageUpload(header *multipart.FileHeader, maxSize int64) ([]byte, error) {
	content, err := readFormFile(header, maxSize)
	if err != nil {
		return nil, err
	}
	if !storage.IsAllowedImageType(storage.DetectContentType(content)) {
		return nil, models.NewValidationError("File must be an image")
	}
	return content, nil
}

func (s *Server) isAdminByUserID(ctx context.Context, userID string) (bool, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Select("is_admin").First(&user, "id = ?", userID).Error; err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}
