package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllLoadsQueryHandler reads every load for administrative oversight.
type GetAllLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllLoadsQueryHandler creates a handler for the admin load listing.
func NewGetAllLoadsQueryHandler(db *gorm.DB) GetAllLoadsQueryHandler {
	return GetAllLoadsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetAllLoadsQuery,
) ([]LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + loadColumns + `
		FROM loads
		ORDER BY posted_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLoadRows(rows)
}
