package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriverBidHistoryQueryHandler reads a driver's complete bid history,
// newest first, with no status filtering.
type GetDriverBidHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverBidHistoryQueryHandler creates a handler for the history view.
func NewGetDriverBidHistoryQueryHandler(db *gorm.DB) GetDriverBidHistoryQueryHandler {
	return GetDriverBidHistoryQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDriverBidHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetDriverBidHistoryQuery,
) ([]BidResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+bidColumns+`
		FROM bids b
		WHERE b.driver_id = ?
		ORDER BY b.created_at DESC
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBidRows(rows)
}
