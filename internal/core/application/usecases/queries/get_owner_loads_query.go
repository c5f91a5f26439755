package queries

import (
	"errors"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrGetOwnerLoadsQueryIsNotConstructed = errors.New(
	"GetOwnerLoadsQuery must be created via NewGetOwnerLoadsQuery constructor",
)

// GetOwnerLoadsQuery retrieves every load posted by one goods owner.
type GetOwnerLoadsQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOwnerLoadsQuery creates a query for an owner's load dashboard.
func NewGetOwnerLoadsQuery(ownerID kernel.UUID) (GetOwnerLoadsQuery, error) {
	q := GetOwnerLoadsQuery{guard: guard.NewConstructorGuard()}
	if err := q.setOwnerID(ownerID); err != nil {
		return GetOwnerLoadsQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOwnerLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerLoadsQueryIsNotConstructed)
}

// OwnerID returns the goods owner whose loads are requested.
func (q GetOwnerLoadsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

func (q *GetOwnerLoadsQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	q.ownerID = ownerID
	return nil
}
