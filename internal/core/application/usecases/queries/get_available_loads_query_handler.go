package queries

import (
	"context"

	"lorrylink/internal/core/domain/model/load"

	"gorm.io/gorm"
)

// GetAvailableLoadsQueryHandler reads the biddable loads from the database,
// newest posting first.
type GetAvailableLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableLoadsQueryHandler creates a handler for the open-loads listing.
func NewGetAvailableLoadsQueryHandler(db *gorm.DB) GetAvailableLoadsQueryHandler {
	return GetAvailableLoadsQueryHandler{db: db}
}

// Handle executes the query. Only loads in pending or active status are
// returned; everything further along the handshake is hidden from bidders.
func (h GetAvailableLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableLoadsQuery,
) ([]LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+loadColumns+`
		FROM loads
		WHERE status IN (?, ?)
		ORDER BY posted_at DESC
	`, load.Pending.String(), load.Active.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLoadRows(rows)
}
