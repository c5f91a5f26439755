package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOwnerLoadsQueryHandler reads an owner's own postings, newest first.
type GetOwnerLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnerLoadsQueryHandler creates a handler for the owner dashboard.
func NewGetOwnerLoadsQueryHandler(db *gorm.DB) GetOwnerLoadsQueryHandler {
	return GetOwnerLoadsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOwnerLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetOwnerLoadsQuery,
) ([]LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+loadColumns+`
		FROM loads
		WHERE owner_id = ?
		ORDER BY posted_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLoadRows(rows)
}
