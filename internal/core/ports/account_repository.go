// Package ports defines repository interfaces for the freight marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	// Returns a ConflictError if the username or email is already taken.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such account exists.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByUsername retrieves an account by its unique username.
	GetByUsername(ctx context.Context, username string) (*account.Account, error)

	// GetByEmail retrieves an account by its unique email address.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)

	// Delete removes an account. The account's bids, its loads (with their
	// bids and disputes), and the disputes it raised are removed with it.
	Delete(ctx context.Context, id kernel.UUID) error
}
