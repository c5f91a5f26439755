package queries

import (
	"context"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBidsForLoadQueryHandler reads the bids on a load. Only the load's owner
// (or an administrator) may see them.
type GetBidsForLoadQueryHandler struct {
	db *gorm.DB
}

// NewGetBidsForLoadQueryHandler creates a handler for the bid review screen.
func NewGetBidsForLoadQueryHandler(db *gorm.DB) GetBidsForLoadQueryHandler {
	return GetBidsForLoadQueryHandler{db: db}
}

// Handle executes the query. A missing load surfaces as ObjectNotFound before
// any authorization decision, so callers cannot probe ownership of loads that
// do not exist.
func (h GetBidsForLoadQueryHandler) Handle(
	ctx context.Context,
	query GetBidsForLoadQuery,
) ([]BidResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rawOwnerID uuid.UUID
	row := h.db.WithContext(ctx).Raw(`
		SELECT owner_id FROM loads WHERE id = ?
	`, query.LoadID().Bytes()).Row()
	if err := row.Scan(&rawOwnerID); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("load", query.LoadID(), err)
	}

	ownerID, err := kernel.UUIDFromBytes(rawOwnerID[:])
	if err != nil {
		return nil, err
	}

	if !query.Actor().Is(account.Admin) && !ownerID.IsEqual(query.Actor().ID()) {
		return nil, errs.NewForbiddenError("only the load's owner can review its bids")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+bidColumns+`
		FROM bids b
		WHERE b.load_id = ?
		ORDER BY b.created_at DESC
	`, query.LoadID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBidRows(rows)
}
