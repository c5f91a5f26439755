package queries

import (
	"errors"

	"lorrylink/internal/pkg/guard"
)

var ErrGetAvailableLoadsQueryIsNotConstructed = errors.New(
	"GetAvailableLoadsQuery must be created via NewGetAvailableLoadsQuery constructor",
)

// GetAvailableLoadsQuery retrieves every load still open for bids. This is
// the driver's marketplace view.
type GetAvailableLoadsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableLoadsQuery creates a query for the open-loads listing.
func NewGetAvailableLoadsQuery() GetAvailableLoadsQuery {
	return GetAvailableLoadsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableLoadsQueryIsNotConstructed)
}
