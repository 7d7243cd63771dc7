package adapter

import (
	"context"

	"github.com/personal-finance/tracker/internal/domain/entity"
)

// SessionStore keeps session records outside the process with an expiry.
type SessionStore interface {
	// Save writes the session and resets its expiry.
	Save(ctx context.Context, session *entity.Session) error

	// Refresh rewrites an existing session and resets its expiry. It returns
	// domainerror.ErrSessionNotFound when the session is gone.
	Refresh(ctx context.Context, session *entity.Session) error

	// Find loads a session. It returns domainerror.ErrSessionNotFound when absent or expired.
	Find(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// Ping checks connectivity to the backing store.
	Ping(ctx context.Context) error
}
