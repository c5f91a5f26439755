package queries

import (
	"errors"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrGetAssignedLoadsQueryIsNotConstructed = errors.New(
	"GetAssignedLoadsQuery must be created via NewGetAssignedLoadsQuery constructor",
)

// GetAssignedLoadsQuery retrieves the loads a driver has won, from assignment
// through delivery.
type GetAssignedLoadsQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedLoadsQuery creates a query for a driver's active jobs.
func NewGetAssignedLoadsQuery(driverID kernel.UUID) (GetAssignedLoadsQuery, error) {
	q := GetAssignedLoadsQuery{guard: guard.NewConstructorGuard()}
	if err := q.setDriverID(driverID); err != nil {
		return GetAssignedLoadsQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedLoadsQueryIsNotConstructed)
}

// DriverID returns the driver whose assignments are requested.
func (q GetAssignedLoadsQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetAssignedLoadsQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}
