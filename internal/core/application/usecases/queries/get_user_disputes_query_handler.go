package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserDisputesQueryHandler reads the disputes a user raised, newest first.
type GetUserDisputesQueryHandler struct {
	db *gorm.DB
}

// NewGetUserDisputesQueryHandler creates a handler for a user's dispute list.
func NewGetUserDisputesQueryHandler(db *gorm.DB) GetUserDisputesQueryHandler {
	return GetUserDisputesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetUserDisputesQueryHandler) Handle(
	ctx context.Context,
	query GetUserDisputesQuery,
) ([]DisputeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+disputeColumns+`
		FROM disputes d
		WHERE d.raised_by_id = ?
		ORDER BY d.created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDisputeRows(rows)
}
