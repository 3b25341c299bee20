package seed

import (
	"fmt"
	"log"
	"math/rand"

	"nnrgconnect/internal/models"

	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumStudents    int
	NumPending     int
	NumConnections int
	AdminEmail     string
	ShouldClean    bool
}

// Seeder populates the database with a realistic campus snapshot.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all seeded rows. Connections go first so user
// deletes never orphan an edge.
func (s *Seeder) ClearAll() error {
	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Connection{}).Error; err != nil {
		return fmt.Errorf("clearing connections: %w", err)
	}
	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("clearing users: %w", err)
	}
	log.Println("Cleared users and connections")
	return nil
}

// Run seeds the database according to opts and returns the created
// approved students.
func (s *Seeder) Run(opts Options) ([]*models.User, error) {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return nil, err
		}
	}

	factory, err := NewFactory(s.db)
	if err != nil {
		return nil, err
	}

	if opts.AdminEmail != "" {
		if _, err := factory.CreateAdmin(opts.AdminEmail); err != nil {
			return nil, err
		}
		log.Printf("Created admin %s (password %q)", opts.AdminEmail, defaultPassword)
	}

	students := make([]*models.User, 0, opts.NumStudents)
	for i := 0; i < opts.NumStudents; i++ {
		student, err := factory.CreateStudent()
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	for i := 0; i < opts.NumPending; i++ {
		if _, err := factory.CreatePendingStudent(); err != nil {
			return nil, err
		}
	}

	created, err := s.connectStudents(factory, students, opts.NumConnections)
	if err != nil {
		return nil, err
	}

	log.Printf("Seeded %d approved students, %d pending, %d connections",
		len(students), opts.NumPending, created)
	return students, nil
}

// connectStudents links random pairs until the target count is reached.
// Duplicate picks are skipped, so sparse pools may fall short.
func (s *Seeder) connectStudents(factory *Factory, students []*models.User, target int) (int, error) {
	if len(students) < 2 || target <= 0 {
		return 0, nil
	}

	seen := make(map[string]bool)
	created := 0
	attempts := 0
	for created < target && attempts < target*10 {
		attempts++
		a := students[rand.Intn(len(students))]
		b := students[rand.Intn(len(students))]
		if a.ID == b.ID {
			continue
		}
		low, high := models.OrderPair(a.ID, b.ID)
		key := low + ":" + high
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, err := factory.CreateConnection(a, b); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
