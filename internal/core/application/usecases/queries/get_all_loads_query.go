package queries

import (
	"errors"

	"lorrylink/internal/pkg/guard"
)

var ErrGetAllLoadsQueryIsNotConstructed = errors.New(
	"GetAllLoadsQuery must be created via NewGetAllLoadsQuery constructor",
)

// GetAllLoadsQuery retrieves every load regardless of status. Admin listing.
type GetAllLoadsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllLoadsQuery creates a query for the admin load listing.
func NewGetAllLoadsQuery() GetAllLoadsQuery {
	return GetAllLoadsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllLoadsQueryIsNotConstructed)
}
