package domain

import (
	"context"
	"time"
)

// Roles a user can register with. Role is fixed at registration and never
// changes afterwards.
const (
	RoleAdmin     = "admin"
	RoleRecruiter = "recruiter"
	RoleSeeker    = "seeker"
)

// ValidRoles for registration validation
var ValidRoles = []string{RoleAdmin, RoleRecruiter, RoleSeeker}

type User struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"-"` // never serialized
	Role              string     `json:"role"`
	IsProfileComplete bool       `json:"is_profile_complete"`
	Profile           ProfileRef `json:"profile"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// PublicUser is the projection returned to clients. The password hash and
// internal flags stay server-side.
type PublicUser struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	IsProfileComplete bool   `json:"isProfileComplete"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                u.ID,
		Email:             u.Email,
		Role:              u.Role,
		IsProfileComplete: u.IsProfileComplete,
	}
}

type UserRepository interface {
	// Create inserts the user and maps a duplicate-email violation to Conflict.
	Create(ctx context.Context, user *User) error
	// GetByID returns (nil, nil) when the user does not exist.
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByEmail returns (nil, nil) when no user has this email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// SetProfileRef records the profile linkage and marks the profile complete.
	SetProfileRef(ctx context.Context, userID string, ref ProfileRef) error
}

// RegisterInput carries the registration submission.
type RegisterInput struct {
	Email    string
	Password string
	Role     string
	Otp      string
}

// RegisterResult is the success payload of a registration: the signed session
// token plus the public projection of the new account.
type RegisterResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type AuthUsecase interface {
	RequestOtp(ctx context.Context, email string) error
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
}

// TokenIssuer signs session credentials carrying the account id and role.
type TokenIssuer interface {
	Generate(userID, role string) (string, error)
}
