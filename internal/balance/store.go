package balance

import (
	"context"

	"github.com/splitledger/backend/internal/money"
)

// Store is the persistence boundary for balance rows. The SQL implementation
// is bound to whatever DBTX it was constructed with, so binding it to an open
// *sql.Tx scopes every call to that transaction. Find must take a write lock
// on the matched row so that two concurrent ApplyDebt calls on the same pair
// serialize instead of both reading stale state.
type Store interface {
	// Find returns the balance row in the exact direction given, or nil.
	Find(ctx context.Context, projectID, fromUserID, toUserID int64) (*Balance, error)

	// Insert creates a new balance row and fills in its ID and UpdatedAt.
	Insert(ctx context.Context, b *Balance) error

	// UpdateAmount sets amount and baseAmount on an existing row.
	UpdateAmount(ctx context.Context, id int64, amount, baseAmount money.Cents) error

	// Delete removes a balance row.
	Delete(ctx context.Context, id int64) error

	// ListByProject returns all balance rows for a project.
	ListByProject(ctx context.Context, projectID int64) ([]*Balance, error)
}
