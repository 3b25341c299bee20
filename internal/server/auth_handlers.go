package server

import (
	"fmt"
	"strings"
	"time"

	"nnrgconnect/internal/models"
	"nnrgconnect/internal/storage"
	"nnrgconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Signup handles POST /api/auth/signup. The request is a multipart
// form carrying the registration fields and the `idCard` image.
// No token is issued; the account waits for admin approval.
func (s *Server) Signup(c *fiber.Ctx) error {
	in := validation.SignupInput{
		FullName:     strings.TrimSpace(c.FormValue("fullName")),
		Email:        strings.ToLower(strings.TrimSpace(c.FormValue("email"))),
		PhoneNumber:  strings.TrimSpace(c.FormValue("phoneNumber")),
		RollNumber:   strings.TrimSpace(c.FormValue("rollNumber")),
		Password:     c.FormValue("password"),
		Branch:       strings.TrimSpace(c.FormValue("branch")),
		AcademicYear: strings.TrimSpace(c.FormValue("academicYear")),
	}
	if err := validation.ValidateSignup(in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	header, err := c.FormFile("idCard")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("College ID card image is required."))
	}
	content, err := readImageUpload(header, maxIDCardSizeBytes)
	if err != nil {
		return respondServiceError(c, err)
	}

	// Check both unique fields up front for the friendlier message; the
	// DB unique indexes still decide under concurrency.
	existing, err := s.userRepo.GetByEmail(c.Context(), in.Email)
	if err != nil {
		return respondServiceError(c, err)
	}
	if existing == nil {
		existing, err = s.userRepo.GetByRollNumber(c.Context(), in.RollNumber)
		if err != nil {
			return respondServiceError(c, err)
		}
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("User with this email or roll number already exists."))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	idCardPath, err := s.store.Save(storage.KindIDCard, header.Filename, content)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		FullName:           in.FullName,
		Email:              in.Email,
		PhoneNumber:        in.PhoneNumber,
		RollNumber:         in.RollNumber,
		Branch:             in.Branch,
		AcademicYear:       in.AcademicYear,
		Password:           string(hashedPassword),
		CollegeIDCardImage: idCardPath,
	}
	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		// Do not leave an orphaned ID card behind.
		s.store.DeleteQuietly(idCardPath)
		return respondServiceError(c, createErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful. Please wait for admin approval.",
		"user": fiber.Map{
			"id":         user.ID,
			"fullName":   user.FullName,
			"email":      user.Email,
			"rollNumber": user.RollNumber,
		},
	})
}

// Signin handles POST /api/auth/signin
func (s *Server) Signin(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Please provide email and password."))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return respondServiceError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid credentials. User not found."))
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid credentials. Password incorrect."))
	}

	if !user.IsApproved {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Account not yet approved by admin. Please wait."))
	}

	token, err := s.generateToken(user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":         user.ID,
			"fullName":   user.FullName,
			"email":      user.Email,
			"rollNumber": user.RollNumber,
			"isAdmin":    user.IsAdmin,
		},
	})
}

// generateToken creates a 7-day JWT for the given user
func (s *Server) generateToken(user *models.User) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":         user.ID,
		"name":        user.FullName,
		"email":       user.Email,
		"roll_number": user.RollNumber,
		"is_admin":    user.IsAdmin,
		"iss":         tokenIssuer,
		"aud":         tokenAudience,
		"exp":         now.Add(time.Hour * 24 * 7).Unix(),
		"iat":         now.Unix(),
		"nbf":         now.Unix(),
		"jti":         s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
