package server

import (
	"errors"

	"nnrgconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateConnection handles POST /api/connections
func (s *Server) CreateConnection(c *fiber.Ctx) error {
	var req struct {
		TargetUserID string `json:"targetUserId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.TargetUserID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Target user ID is required."))
	}

	conn, err := s.connectionService.Connect(c.Context(), currentUserID(c), req.TargetUserID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeConflict && conn != nil {
			// Include the existing edge so clients can reconcile.
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":      appErr.Message,
				"code":       appErr.Code,
				"connection": conn,
			})
		}
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Connection established successfully.",
		"connection": conn,
	})
}

// GetMyConnections handles GET /api/connections/me
func (s *Server) GetMyConnections(c *fiber.Ctx) error {
	entries, err := s.connectionService.ListFor(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(entries)
}

// GetConnectionStatus handles GET /api/connections/status/:targetUserId
func (s *Server) GetConnectionStatus(c *fiber.Ctx) error {
	status, err := s.connectionService.StatusOf(c.Context(), currentUserID(c), c.Params("targetUserId"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(status)
}

// GetBulkConnectionStatus handles POST /api/connections/status/bulk
func (s *Server) GetBulkConnectionStatus(c *fiber.Ctx) error {
	var req struct {
		UserIDs []string `json:"userIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("An array of userIds is required."))
	}

	statusMap, err := s.connectionService.BulkStatusOf(c.Context(), currentUserID(c), req.UserIDs)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(statusMap)
}
