package queries

import (
	"errors"

	"lorrylink/internal/pkg/guard"
)

var ErrGetAllDisputesQueryIsNotConstructed = errors.New(
	"GetAllDisputesQuery must be created via NewGetAllDisputesQuery constructor",
)

// GetAllDisputesQuery retrieves every dispute for arbitration. Admin listing.
type GetAllDisputesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDisputesQuery creates a query for the admin dispute listing.
func NewGetAllDisputesQuery() GetAllDisputesQuery {
	return GetAllDisputesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDisputesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDisputesQueryIsNotConstructed)
}
