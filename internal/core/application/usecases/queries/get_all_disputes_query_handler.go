package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllDisputesQueryHandler reads every dispute, open ones first by age so
// the arbitration backlog surfaces at the top.
type GetAllDisputesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDisputesQueryHandler creates a handler for the admin dispute listing.
func NewGetAllDisputesQueryHandler(db *gorm.DB) GetAllDisputesQueryHandler {
	return GetAllDisputesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllDisputesQueryHandler) Handle(
	ctx context.Context,
	query GetAllDisputesQuery,
) ([]DisputeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + disputeColumns + `
		FROM disputes d
		ORDER BY d.status = 'open' DESC, d.created_at ASC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDisputeRows(rows)
}
