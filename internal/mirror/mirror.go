// Package mirror keeps per-user cart snapshots in a key-value store so a
// cart survives page reloads independent of server round-trips. The stored
// snapshot is opaque to the store: a JSON-encoded item list under a key
// derived from the user ID.
package mirror

import (
	"context"

	"github.com/shopease/shopease/internal/models"
)

type Mirror interface {
	// Get returns the mirrored snapshot for the user. The second return
	// value is false when no snapshot exists; corrupt data is an error.
	Get(ctx context.Context, userID string) ([]models.CartItem, bool, error)
	// Set overwrites the snapshot for the user with the full item list.
	Set(ctx context.Context, userID string, items []models.CartItem) error
}

// Key derives the storage key for a user's cart snapshot.
func Key(userID string) string {
	return "cart_" + userID
}
