// Package drafts persists a single local snapshot of the onboarding
// payload. It exists so a failed save never loses the tenant's work:
// the snapshot is written when the portal rejects a PUT, cleared when
// one succeeds, and offered as a fallback when the portal cannot be
// reached at startup.
package drafts

import (
	"context"
	"errors"
)

// ErrNotFound means no snapshot has been stored.
var ErrNotFound = errors.New("no draft snapshot")

// Repository stores at most one payload snapshot.
type Repository interface {
	// Save replaces the snapshot with payload.
	Save(ctx context.Context, payload []byte) error

	// Load returns the stored payload, or ErrNotFound.
	Load(ctx context.Context) ([]byte, error)

	// Clear removes the snapshot. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
