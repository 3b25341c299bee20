package server

import (
	"nnrgconnect/internal/models"
	"nnrgconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AnalyzeResume handles POST /api/career/analyze-resume. The request
// is a multipart form with the PDF under the `resume` field.
func (s *Server) AnalyzeResume(c *fiber.Ctx) error {
	header, err := c.FormFile("resume")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No resume file uploaded."))
	}

	content, err := readFormFile(header, maxResumeSizeBytes)
	if err != nil {
		return respondServiceError(c, err)
	}

	suggestions, err := s.careerService.AnalyzeResume(c.Context(), header.Header.Get("Content-Type"), content)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"suggestions": suggestions})
}

// GetCareerTips handles POST /api/career/get-tips
func (s *Server) GetCareerTips(c *fiber.Ctx) error {
	var req service.CareerTipsInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tips, err := s.careerService.GetCareerTips(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"tips": tips})
}
