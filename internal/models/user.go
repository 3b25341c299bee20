// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered student (or admin) account.
// IDs are UUID strings; their lexicographic order is what connection
// canonicalization relies on.
type User struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	FullName    string `gorm:"not null" json:"fullName"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `gorm:"not null" json:"phoneNumber"`
	RollNumber  string `gorm:"uniqueIndex;not null" json:"rollNumber"`

	Branch       string `gorm:"not null" json:"branch"`
	AcademicYear string `gorm:"not null" json:"academicYear"`

	Password           string `gorm:"not null" json:"-"`
	CollegeIDCardImage string `gorm:"not null" json:"collegeIdCardImage"`

	IsApproved bool       `gorm:"default:false;index" json:"isApproved"`
	IsAdmin    bool       `gorm:"default:false" json:"isAdmin"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy *string    `gorm:"type:uuid" json:"approvedBy,omitempty"`

	ProfilePictureURL    string `json:"profilePictureUrl"`
	LinkedinProfileURL   string `json:"linkedinProfileUrl"`
	DisplayEmail         bool   `gorm:"default:true" json:"displayEmail"`
	DisplayContactNumber bool   `gorm:"default:true" json:"displayContactNumber"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// PublicProfile is the projection of a user shown to other authenticated
// students. Email and phone number honor the owner's display flags.
type PublicProfile struct {
	ID                 string  `json:"_id"`
	FullName           string  `json:"fullName"`
	RollNumber         string  `json:"rollNumber"`
	ProfilePictureURL  string  `json:"profilePictureUrl"`
	LinkedinProfileURL string  `json:"linkedinProfileUrl"`
	Email              *string `json:"email"`
	PhoneNumber        *string `json:"phoneNumber"`
}

// PublicProfile applies the visibility projection to the user.
func (u *User) PublicProfile() PublicProfile {
	p := PublicProfile{
		ID:                 u.ID,
		FullName:           u.FullName,
		RollNumber:         u.RollNumber,
		ProfilePictureURL:  u.ProfilePictureURL,
		LinkedinProfileURL: u.LinkedinProfileURL,
	}
	if u.DisplayEmail {
		email := u.Email
		p.Email = &email
	}
	if u.DisplayContactNumber {
		phone := u.PhoneNumber
		p.PhoneNumber = &phone
	}
	return p
}

// ConnectionProfile is the reduced projection embedded in connection
// listings. Contact fields are never included here.
type ConnectionProfile struct {
	ID                 string `json:"_id"`
	FullName           string `json:"fullName"`
	ProfilePictureURL  string `json:"profilePictureUrl"`
	LinkedinProfileURL string `json:"linkedinProfileUrl"`
	RollNumber         string `json:"rollNumber"`
}

// ConnectionProfile returns the projection used when resolving edges.
func (u *User) ConnectionProfile() ConnectionProfile {
	return ConnectionProfile{
		ID:                 u.ID,
		FullName:           u.FullName,
		ProfilePictureURL:  u.ProfilePictureURL,
		LinkedinProfileURL: u.LinkedinProfileURL,
		RollNumber:         u.RollNumber,
	}
}
