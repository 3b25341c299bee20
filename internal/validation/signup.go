// Package validation provides input validation utilities.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9+\-() ]{7,15}$`)
	rollRegex  = regexp.MustCompile(`^[a-zA-Z0-9\-]+$`)
)

// ValidateEmail checks basic email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}

// ValidatePassword checks if a password meets security requirements.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	hasLetter := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain at least one letter and one digit")
	}
	return nil
}

// ValidatePhoneNumber checks a phone number for plausible length and characters.
func ValidatePhoneNumber(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("invalid phone number")
	}
	return nil
}

// ValidateRollNumber checks a college roll number for allowed characters.
func ValidateRollNumber(roll string) error {
	if len(roll) < 2 || len(roll) > 20 {
		return fmt.Errorf("roll number must be between 2 and 20 characters")
	}
	if !rollRegex.MatchString(roll) {
		return fmt.Errorf("roll number can only contain letters, numbers, and hyphens")
	}
	return nil
}

// ValidateFullName checks that a name is present and within bounds.
func ValidateFullName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("full name is required")
	}
	if len(trimmed) > 100 {
		return fmt.Errorf("full name must not exceed 100 characters")
	}
	return nil
}

// ValidateLinkedinURL checks that a profile link points at linkedin.com.
func ValidateLinkedinURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid LinkedIn profile URL")
	}
	host := strings.ToLower(u.Hostname())
	if host != "linkedin.com" && !strings.HasSuffix(host, ".linkedin.com") {
		return fmt.Errorf("LinkedIn profile URL must point to linkedin.com")
	}
	return nil
}

// ValidateUserID checks that an identifier is a well-formed UUID.
func ValidateUserID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid user ID format")
	}
	return nil
}

// SignupInput carries the registration fields submitted via multipart form.
type SignupInput struct {
	FullName     string
	Email        string
	PhoneNumber  string
	RollNumber   string
	Password     string
	Branch       string
	AcademicYear string
}

// ValidateSignup checks every registration field and returns the first problem.
func ValidateSignup(in SignupInput) error {
	if in.FullName == "" || in.Email == "" || in.PhoneNumber == "" ||
		in.RollNumber == "" || in.Password == "" || in.Branch == "" || in.AcademicYear == "" {
		return fmt.Errorf("please provide all required fields")
	}
	if err := ValidateFullName(in.FullName); err != nil {
		return err
	}
	if err := ValidateEmail(in.Email); err != nil {
		return err
	}
	if err := ValidatePhoneNumber(in.PhoneNumber); err != nil {
		return err
	}
	if err := ValidateRollNumber(in.RollNumber); err != nil {
		return err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return err
	}
	return nil
}
