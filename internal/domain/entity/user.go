// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sex represents the demographic sex field captured at registration.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// User represents a registered account holder.
type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PasswordHash string
	Sex          Sex
	Age          int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewUser creates a new active User.
func NewUser(fullName, email, passwordHash string, sex Sex, age int) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		Sex:          sex,
		Age:          age,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CanAuthenticate reports whether the user may hold a session.
func (u *User) CanAuthenticate() bool {
	return u != nil && u.IsActive && u.DeletedAt == nil
}
