package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the user's role tag
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether the given role is one of the known role tags.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// Profile holds the user's profile sub-record
type Profile struct {
	FirstName  string `bson:"firstName" json:"firstName"`
	LastName   string `bson:"lastName" json:"lastName"`
	StudentID  string `bson:"studentId,omitempty" json:"studentId,omitempty"`
	Department string `bson:"department,omitempty" json:"department,omitempty"`
	Semester   int    `bson:"semester,omitempty" json:"semester,omitempty"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// User is a stored account. Email is unique across all users.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	Role      Role               `bson:"role" json:"role"`
	Profile   Profile            `bson:"profile" json:"profile"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DisplayName joins first and last name for presentation.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.Profile.FirstName + " " + u.Profile.LastName)
}
