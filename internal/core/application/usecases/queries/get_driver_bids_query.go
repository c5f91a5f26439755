package queries

import (
	"errors"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrGetDriverBidsQueryIsNotConstructed = errors.New(
	"GetDriverBidsQuery must be created via NewGetDriverBidsQuery constructor",
)

// GetDriverBidsQuery retrieves a driver's live bids: the ones still awaiting
// an outcome, one per load.
type GetDriverBidsQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverBidsQuery creates a query for a driver's active-bids view.
func NewGetDriverBidsQuery(driverID kernel.UUID) (GetDriverBidsQuery, error) {
	q := GetDriverBidsQuery{guard: guard.NewConstructorGuard()}
	if err := q.setDriverID(driverID); err != nil {
		return GetDriverBidsQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverBidsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverBidsQueryIsNotConstructed)
}

// DriverID returns the driver whose live bids are requested.
func (q GetDriverBidsQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetDriverBidsQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}
