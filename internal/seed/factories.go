// Package seed provides helpers to create demo data for development and
// testing. It is never wired into the production server.
package seed

import (
	"fmt"
	"strings"
	"time"

	"nnrgconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var branches = []string{"CSE", "ECE", "EEE", "MECH", "CIVIL", "IT", "AIML"}

// defaultPassword is the plaintext password every seeded account uses.
const defaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db           *gorm.DB
	passwordHash string
	nextRoll     int
}

// NewFactory creates a new Factory bound to the provided Gorm DB. The
// shared bcrypt hash is computed once so seeding stays fast.
func NewFactory(db *gorm.DB) (*Factory, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hashing seed password: %w", err)
	}
	return &Factory{db: db, passwordHash: string(hash), nextRoll: 1}, nil
}

func (f *Factory) rollNumber() string {
	roll := fmt.Sprintf("20R01A05%02d", f.nextRoll)
	f.nextRoll++
	return roll
}

// CreateStudent constructs and persists an approved student account.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateStudent(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	roll := f.rollNumber()
	approvedAt := gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now()).UTC()
	user := &models.User{
		FullName:             name,
		Email:                fmt.Sprintf("%s.%s@nnrg.edu.in", slugify(name), strings.ToLower(roll)),
		PhoneNumber:          gofakeit.Numerify("9#########"),
		RollNumber:           roll,
		Branch:               branches[gofakeit.Number(0, len(branches)-1)],
		AcademicYear:         fmt.Sprintf("%d", gofakeit.Number(1, 4)),
		Password:             f.passwordHash,
		CollegeIDCardImage:   fmt.Sprintf("/uploads/id_cards/%s.png", gofakeit.UUID()),
		IsApproved:           true,
		ApprovedAt:           &approvedAt,
		ProfilePictureURL:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		LinkedinProfileURL:   fmt.Sprintf("https://www.linkedin.com/in/%s", slugify(name)),
		DisplayEmail:         gofakeit.Bool(),
		DisplayContactNumber: gofakeit.Bool(),
	}

	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("creating student: %w", err)
	}
	return user, nil
}

// CreatePendingStudent persists a student awaiting admin approval.
func (f *Factory) CreatePendingStudent(overrides ...func(*models.User)) (*models.User, error) {
	base := func(u *models.User) {
		u.IsApproved = false
		u.ApprovedAt = nil
		u.ProfilePictureURL = ""
		u.LinkedinProfileURL = ""
	}
	return f.CreateStudent(append([]func(*models.User){base}, overrides...)...)
}

// CreateAdmin persists an approved administrator account.
func (f *Factory) CreateAdmin(email string) (*models.User, error) {
	return f.CreateStudent(func(u *models.User) {
		u.FullName = "NNRG Admin"
		u.Email = email
		u.IsAdmin = true
	})
}

// CreateConnection persists a canonical edge between two users.
func (f *Factory) CreateConnection(a, b *models.User) (*models.Connection, error) {
	low, high := models.OrderPair(a.ID, b.ID)
	conn := &models.Connection{UserLowID: low, UserHighID: high}
	if err := f.db.Create(conn).Error; err != nil {
		return nil, fmt.Errorf("creating connection: %w", err)
	}
	return conn, nil
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", ".")
}
