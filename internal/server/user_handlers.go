package server

import (
	"nnrgconnect/internal/models"
	"nnrgconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.Me(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// profileResponse strips the fields a profile update must not echo
// back (ID card path, approval state) on top of the password.
type profileResponse struct {
	ID                   string `json:"id"`
	FullName             string `json:"fullName"`
	Email                string `json:"email"`
	PhoneNumber          string `json:"phoneNumber"`
	RollNumber           string `json:"rollNumber"`
	Branch               string `json:"branch"`
	AcademicYear         string `json:"academicYear"`
	ProfilePictureURL    string `json:"profilePictureUrl"`
	LinkedinProfileURL   string `json:"linkedinProfileUrl"`
	DisplayEmail         bool   `json:"displayEmail"`
	DisplayContactNumber bool   `json:"displayContactNumber"`
}

// UpdateMyProfile handles PUT /api/users/me/profile. The request is a
// multipart form; boolean flags arrive as "true"/"false" strings and an
// optional `profilePicture` image replaces the stored one.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	in := service.UpdateProfileInput{
		UserID:               currentUserID(c),
		DisplayEmail:         c.FormValue("displayEmail"),
		DisplayContactNumber: c.FormValue("displayContactNumber"),
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		if values, ok := form.Value["linkedinProfileUrl"]; ok && len(values) > 0 {
			in.LinkedinProfileURL = &values[0]
		}
	}

	if header, err := c.FormFile("profilePicture"); err == nil {
		content, readErr := readImageUpload(header, maxProfilePicSizeBytes)
		if readErr != nil {
			return respondServiceError(c, readErr)
		}
		in.PictureFilename = header.Filename
		in.PictureContent = content
	}

	user, err := s.userService.UpdateProfile(c.Context(), in)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profileResponse{
		ID:                   user.ID,
		FullName:             user.FullName,
		Email:                user.Email,
		PhoneNumber:          user.PhoneNumber,
		RollNumber:           user.RollNumber,
		Branch:               user.Branch,
		AcademicYear:         user.AcademicYear,
		ProfilePictureURL:    user.ProfilePictureURL,
		LinkedinProfileURL:   user.LinkedinProfileURL,
		DisplayEmail:         user.DisplayEmail,
		DisplayContactNumber: user.DisplayContactNumber,
	})
}

// SearchUsers handles GET /api/users/search?query=...&type=name|rollNumber
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	query := c.Query("query")
	searchType := c.Query("type")
	if query == "" || searchType == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Search query and type (name/rollNumber) are required."))
	}

	profiles, err := s.directoryService.Search(c.Context(), currentUserID(c), query, searchType)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profiles)
}

// GetSuggestedUsers handles GET /api/users/suggested
func (s *Server) GetSuggestedUsers(c *fiber.Ctx) error {
	profiles, err := s.directoryService.Suggest(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profiles)
}
