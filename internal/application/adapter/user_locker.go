package adapter

import (
	"context"

	"github.com/google/uuid"
)

// UserLocker serializes state mutations of a single user.
type UserLocker interface {
	// Lock blocks until the user's lock is held or the wait budget runs out.
	// The returned function releases the lock.
	Lock(ctx context.Context, userID uuid.UUID) (unlock func(), err error)
}
