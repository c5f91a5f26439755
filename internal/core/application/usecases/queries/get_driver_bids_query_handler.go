package queries

import (
	"context"

	"lorrylink/internal/core/domain/model/bid"
	"lorrylink/internal/core/domain/model/load"

	"gorm.io/gorm"
)

// GetDriverBidsQueryHandler reads a driver's live bids. The view is
// deduplicated to the most recent bid per load, keeps only bids that still
// await an outcome, and hides bids whose load has already left the
// marketplace (completed or cancelled).
type GetDriverBidsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverBidsQueryHandler creates a handler for the active-bids view.
func NewGetDriverBidsQueryHandler(db *gorm.DB) GetDriverBidsQueryHandler {
	return GetDriverBidsQueryHandler{db: db}
}

// Handle executes the query. DISTINCT ON picks the newest bid per load;
// the status filters implement the live-bid policy.
func (h GetDriverBidsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverBidsQuery,
) ([]BidResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (b.load_id) `+bidColumns+`
		FROM bids b
		JOIN loads l ON l.id = b.load_id
		WHERE b.driver_id = ?
		  AND b.status IN (?, ?)
		  AND l.status IN (?, ?, ?, ?, ?)
		ORDER BY b.load_id, b.created_at DESC
	`, query.DriverID().Bytes(),
		bid.Pending.String(), bid.AwaitingDriverResponse.String(),
		load.Pending.String(), load.AwaitingDriverResponse.String(),
		load.Active.String(), load.Assigned.String(), load.InTransit.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBidRows(rows)
}
