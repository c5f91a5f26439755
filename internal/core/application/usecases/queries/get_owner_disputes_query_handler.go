package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOwnerDisputesQueryHandler reads the disputes touching a goods owner,
// whether the owner raised them or they reference one of the owner's loads.
type GetOwnerDisputesQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnerDisputesQueryHandler creates a handler for the owner dispute view.
func NewGetOwnerDisputesQueryHandler(db *gorm.DB) GetOwnerDisputesQueryHandler {
	return GetOwnerDisputesQueryHandler{db: db}
}

// Handle executes the query. The LEFT JOIN keeps disputes with no load
// reference; those are included only when the owner raised them.
func (h GetOwnerDisputesQueryHandler) Handle(
	ctx context.Context,
	query GetOwnerDisputesQuery,
) ([]DisputeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ownerID := query.OwnerID().Bytes()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+disputeColumns+`
		FROM disputes d
		LEFT JOIN loads l ON l.id = d.load_id
		WHERE d.raised_by_id = ? OR l.owner_id = ?
		ORDER BY d.created_at DESC
	`, ownerID, ownerID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDisputeRows(rows)
}
