package ports

import (
	"context"

	"lorrylink/internal/core/domain/model/bid"
	"lorrylink/internal/core/domain/model/kernel"
)

// BidRepository defines the persistence contract for bid aggregates.
type BidRepository interface {
	// Add persists a new bid aggregate to storage.
	Add(ctx context.Context, aggregate *bid.Bid) error

	// Update persists changes to an existing bid aggregate.
	Update(ctx context.Context, aggregate *bid.Bid) error

	// Get retrieves a bid aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such bid exists.
	Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error)

	// GetByLoadAndDriver retrieves the driver's bid on the given load.
	// Each driver places at most one bid per load, so the pair is unique.
	// Returns an ObjectNotFoundError if the driver has not bid on the load.
	GetByLoadAndDriver(ctx context.Context, loadID, driverID kernel.UUID) (*bid.Bid, error)

	// GetAllPendingByLoad retrieves every bid on the load still in Pending
	// status. Used when a hire parks the rival bids.
	GetAllPendingByLoad(ctx context.Context, loadID kernel.UUID) ([]*bid.Bid, error)
}
