package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record behind an authenticated client.
type Session struct {
	ID          string    `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	CreatedAt   time.Time `json:"created_at"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// NewSession opens a session for user.
func NewSession(user *User) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		CreatedAt:   now,
		RefreshedAt: now,
	}
}

// Refresh copies the latest profile fields from user into the session.
func (s *Session) Refresh(user *User) {
	s.Email = user.Email
	s.FullName = user.FullName
	s.RefreshedAt = time.Now().UTC()
}

// Identity is the caller resolved for one request.
type Identity struct {
	UserID    uuid.UUID
	SessionID string
	Email     string
	FullName  string
}
