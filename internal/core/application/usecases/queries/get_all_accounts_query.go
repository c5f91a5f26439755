package queries

import (
	"errors"

	"lorrylink/internal/pkg/guard"
)

var ErrGetAllAccountsQueryIsNotConstructed = errors.New(
	"GetAllAccountsQuery must be created via NewGetAllAccountsQuery constructor",
)

// GetAllAccountsQuery retrieves every registered account. Admin listing.
type GetAllAccountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAccountsQuery creates a query for the admin account listing.
func NewGetAllAccountsQuery() GetAllAccountsQuery {
	return GetAllAccountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllAccountsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAccountsQueryIsNotConstructed)
}
