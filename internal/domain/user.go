package domain

import (
	"errors"
	"time"
)

// User represents a household member
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Active         bool
}

// Role represents a user's access level within the household
type Role string

const (
	// RoleOwner manages the household: full access including deletes
	RoleOwner Role = "owner"

	// RoleMember can create and edit their own records
	RoleMember Role = "member"

	// RoleViewer can only view dashboards, no mutations
	RoleViewer Role = "viewer"
)

// Valid roles
var validRoles = map[Role]bool{
	RoleOwner:  true,
	RoleMember: true,
	RoleViewer: true,
}

// IsValid checks if the role is a valid role
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanWrite checks if the role can create or edit records
func (r Role) CanWrite() bool {
	return r == RoleOwner || r == RoleMember
}

// CanDelete checks if the role can hard-delete records
func (r Role) CanDelete() bool {
	return r == RoleOwner
}

// CanView checks if the role can view dashboards
func (r Role) CanView() bool {
	// All authenticated users can view
	return r.IsValid()
}

// Authentication errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrInvalidRole      = errors.New("invalid role")
)
