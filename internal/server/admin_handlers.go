package server

import (
	"fmt"

	"nnrgconnect/internal/models"
	"nnrgconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetPendingRequests handles GET /api/admin/pending-requests
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	users, err := s.adminService.ListPending(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// GetAllUsers handles GET /api/admin/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	users, err := s.adminService.ListAllUsers(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// ApproveUser handles PUT /api/admin/approve/:id
func (s *Server) ApproveUser(c *fiber.Ctx) error {
	targetID := c.Params("id")
	if err := validation.ValidateUserID(targetID); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	user, err := s.adminService.Approve(c.Context(), currentUserID(c), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User %s (%s) approved successfully.", user.FullName, user.RollNumber),
	})
}

// RejectUser handles PUT /api/admin/reject/:id
func (s *Server) RejectUser(c *fiber.Ctx) error {
	targetID := c.Params("id")
	if err := validation.ValidateUserID(targetID); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	user, err := s.userRepo.GetByID(c.Context(), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if err := s.adminService.Reject(c.Context(), targetID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User registration for %s (%s) rejected and record deleted.", user.FullName, user.RollNumber),
	})
}
