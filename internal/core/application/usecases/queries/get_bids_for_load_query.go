package queries

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrGetBidsForLoadQueryIsNotConstructed = errors.New(
	"GetBidsForLoadQuery must be created via NewGetBidsForLoadQuery constructor",
)

// GetBidsForLoadQuery retrieves all bids on one load for its owner's review.
type GetBidsForLoadQuery struct { //nolint:recvcheck //using for validation
	actor  account.Actor
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBidsForLoadQuery creates a query for an owner's bid review screen.
func NewGetBidsForLoadQuery(actor account.Actor, loadID kernel.UUID) (GetBidsForLoadQuery, error) {
	q := GetBidsForLoadQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setActor(actor),
		q.setLoadID(loadID),
	); err != nil {
		return GetBidsForLoadQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBidsForLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetBidsForLoadQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetBidsForLoadQuery) Actor() account.Actor {
	return q.actor
}

// LoadID returns the load whose bids are requested.
func (q GetBidsForLoadQuery) LoadID() kernel.UUID {
	return q.loadID
}

func (q *GetBidsForLoadQuery) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	q.actor = actor
	return nil
}

func (q *GetBidsForLoadQuery) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	q.loadID = loadID
	return nil
}
