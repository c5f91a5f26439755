package queries

import (
	"errors"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrGetDriverBidHistoryQueryIsNotConstructed = errors.New(
	"GetDriverBidHistoryQuery must be created via NewGetDriverBidHistoryQuery constructor",
)

// GetDriverBidHistoryQuery retrieves every bid a driver has ever placed,
// including declined and lost ones.
type GetDriverBidHistoryQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverBidHistoryQuery creates a query for a driver's bid history.
func NewGetDriverBidHistoryQuery(driverID kernel.UUID) (GetDriverBidHistoryQuery, error) {
	q := GetDriverBidHistoryQuery{guard: guard.NewConstructorGuard()}
	if err := q.setDriverID(driverID); err != nil {
		return GetDriverBidHistoryQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverBidHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverBidHistoryQueryIsNotConstructed)
}

// DriverID returns the driver whose history is requested.
func (q GetDriverBidHistoryQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetDriverBidHistoryQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}
