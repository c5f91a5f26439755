package queries

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrGetAccountProfileQueryIsNotConstructed = errors.New(
	"GetAccountProfileQuery must be created via NewGetAccountProfileQuery constructor",
)

// GetAccountProfileQuery retrieves the role-specific profile of one account.
type GetAccountProfileQuery struct { //nolint:recvcheck //using for validation
	actor     account.Actor
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAccountProfileQuery creates a query for an account's profile screen.
func NewGetAccountProfileQuery(actor account.Actor, accountID kernel.UUID) (GetAccountProfileQuery, error) {
	q := GetAccountProfileQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setActor(actor),
		q.setAccountID(accountID),
	); err != nil {
		return GetAccountProfileQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountProfileQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetAccountProfileQuery) Actor() account.Actor {
	return q.actor
}

// AccountID returns the account whose profile is requested.
func (q GetAccountProfileQuery) AccountID() kernel.UUID {
	return q.accountID
}

func (q *GetAccountProfileQuery) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	q.actor = actor
	return nil
}

func (q *GetAccountProfileQuery) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	q.accountID = accountID
	return nil
}
