package auth

import (
	"time"

	"github.com/google/uuid"
)

// Role is fixed at registration.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleHR        Role = "hr"
)

func (r Role) Valid() bool { return r == RoleCandidate || r == RoleHR }

// User is a domain entity representing a system user.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"fullName"`
	Role         Role       `json:"role"`
	Company      string     `json:"company,omitempty"`
	Position     string     `json:"position,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Location     string     `json:"location,omitempty"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// Actor is the per-request identity passed to every service call.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

func (a Actor) IsHR() bool        { return a.Role == RoleHR }
func (a Actor) IsCandidate() bool { return a.Role == RoleCandidate }

type RegisterInput struct {
	Email           string
	Username        string
	Password        string
	PasswordConfirm string
	FullName        string
	Role            Role
	Company         string
	Position        string
	Phone           string
	Location        string
}

// ProfileUpdate carries the mutable profile fields. Role is not among them.
type ProfileUpdate struct {
	Email    string
	Username string
	FullName string
	Company  string
	Position string
	Phone    string
	Location string
}
