package queries

import (
	"errors"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrGetUserDisputesQueryIsNotConstructed = errors.New(
	"GetUserDisputesQuery must be created via NewGetUserDisputesQuery constructor",
)

// GetUserDisputesQuery retrieves the disputes one user has raised.
type GetUserDisputesQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserDisputesQuery creates a query for a user's own disputes.
func NewGetUserDisputesQuery(userID kernel.UUID) (GetUserDisputesQuery, error) {
	q := GetUserDisputesQuery{guard: guard.NewConstructorGuard()}
	if err := q.setUserID(userID); err != nil {
		return GetUserDisputesQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserDisputesQuery) Validate() error {
	return q.guard.Validate(ErrGetUserDisputesQueryIsNotConstructed)
}

// UserID returns the account whose disputes are requested.
func (q GetUserDisputesQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetUserDisputesQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	q.userID = userID
	return nil
}
