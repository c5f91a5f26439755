package queries

import (
	"errors"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrGetOwnerDisputesQueryIsNotConstructed = errors.New(
	"GetOwnerDisputesQuery must be created via NewGetOwnerDisputesQuery constructor",
)

// GetOwnerDisputesQuery retrieves the disputes that concern a goods owner:
// ones they raised plus ones referencing their loads.
type GetOwnerDisputesQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOwnerDisputesQuery creates a query for an owner's dispute view.
func NewGetOwnerDisputesQuery(ownerID kernel.UUID) (GetOwnerDisputesQuery, error) {
	q := GetOwnerDisputesQuery{guard: guard.NewConstructorGuard()}
	if err := q.setOwnerID(ownerID); err != nil {
		return GetOwnerDisputesQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOwnerDisputesQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerDisputesQueryIsNotConstructed)
}

// OwnerID returns the goods owner whose disputes are requested.
func (q GetOwnerDisputesQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

func (q *GetOwnerDisputesQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	q.ownerID = ownerID
	return nil
}
