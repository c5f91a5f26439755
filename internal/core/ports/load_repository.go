package ports

import (
	"context"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
type LoadRepository interface {
	// Add persists a new load aggregate to storage.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update persists changes to an existing load aggregate.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such load exists.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// RaiseHighestBid lifts the load's recorded highest bid to amount if it
	// exceeds the stored value (or none is stored). The comparison and write
	// happen in a single conditional statement, so concurrent bids cannot
	// regress the record regardless of arrival order.
	//
	// Returns true when the stored record moved.
	RaiseHighestBid(ctx context.Context, loadID kernel.UUID, amount kernel.Money) (bool, error)
}
