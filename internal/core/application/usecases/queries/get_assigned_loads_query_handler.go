package queries

import (
	"context"

	"lorrylink/internal/core/domain/model/load"

	"gorm.io/gorm"
)

// GetAssignedLoadsQueryHandler reads a driver's won loads: assigned,
// in transit, or already delivered.
type GetAssignedLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedLoadsQueryHandler creates a handler for a driver's jobs view.
func NewGetAssignedLoadsQueryHandler(db *gorm.DB) GetAssignedLoadsQueryHandler {
	return GetAssignedLoadsQueryHandler{db: db}
}

// Handle executes the query. Loads still in the hire handshake are excluded;
// they only appear here once the driver has accepted.
func (h GetAssignedLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedLoadsQuery,
) ([]LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+loadColumns+`
		FROM loads
		WHERE accepted_driver_id = ?
		  AND status IN (?, ?, ?)
		ORDER BY posted_at DESC
	`, query.DriverID().Bytes(),
		load.Assigned.String(), load.InTransit.String(), load.Completed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLoadRows(rows)
}
