// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the domain model and read through direct SQL for
// performance; results are plain read models, not aggregates.
package queries

import (
	"database/sql"
	"time"

	"lorrylink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LoadResponse is the read model of a posted load.
type LoadResponse struct {
	ID                kernel.UUID
	OwnerID           kernel.UUID
	GoodsType         string
	WeightKg          int
	PickupLocation    string
	DeliveryLocation  string
	PickupDate        time.Time
	DeliveryDate      time.Time
	Description       string
	ExpectedPrice     *int64
	Status            string
	CurrentHighestBid *int64
	AcceptedDriverID  *kernel.UUID
	PostedAt          time.Time
}

// BidResponse is the read model of a placed bid.
type BidResponse struct {
	ID        kernel.UUID
	LoadID    kernel.UUID
	DriverID  kernel.UUID
	Amount    int64
	Status    string
	CreatedAt time.Time
}

// DisputeResponse is the read model of a raised dispute.
type DisputeResponse struct {
	ID                kernel.UUID
	RaisedByID        kernel.UUID
	LoadID            *kernel.UUID
	DriverID          *kernel.UUID
	DisputeType       string
	Message           string
	Status            string
	ResolutionDetails string
	CreatedAt         time.Time
}

// AccountResponse is the read model of a registered account. The password
// hash never leaves the write side.
type AccountResponse struct {
	ID        kernel.UUID
	Username  string
	Email     string
	Role      string
	Active    bool
	CreatedAt time.Time
}

// DriverProfileView is the read model of a driver's profile.
type DriverProfileView struct {
	Phone          string
	LicenceNumber  string
	VehicleType    string
	LoadCapacityKg int
}

// OwnerProfileView is the read model of a goods owner's profile.
type OwnerProfileView struct {
	CompanyName string
	GSTNumber   string
	Phone       string
}

// ProfileResponse is the read model of an account's role-specific profile.
// At most one of the profile views is set, according to the role; both are
// nil when the account never completed a profile.
type ProfileResponse struct {
	AccountID     kernel.UUID
	Role          string
	DriverProfile *DriverProfileView
	OwnerProfile  *OwnerProfileView
}

// loadColumns is the SELECT list every load query shares, in the order
// scanLoadRows expects.
const loadColumns = `
	id,
	owner_id,
	goods_type,
	weight_kg,
	pickup_location,
	delivery_location,
	pickup_date,
	delivery_date,
	description,
	expected_price,
	status,
	current_highest_bid,
	accepted_driver_id,
	posted_at`

func scanLoadRows(rows *sql.Rows) ([]LoadResponse, error) {
	loads := make([]LoadResponse, 0)

	for rows.Next() {
		var resp LoadResponse
		var id, ownerID uuid.UUID
		var expectedPrice, currentHighestBid sql.NullInt64
		var acceptedDriverID uuid.NullUUID

		err := rows.Scan(
			&id,
			&ownerID,
			&resp.GoodsType,
			&resp.WeightKg,
			&resp.PickupLocation,
			&resp.DeliveryLocation,
			&resp.PickupDate,
			&resp.DeliveryDate,
			&resp.Description,
			&expectedPrice,
			&resp.Status,
			&currentHighestBid,
			&acceptedDriverID,
			&resp.PostedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		if expectedPrice.Valid {
			resp.ExpectedPrice = &expectedPrice.Int64
		}
		if currentHighestBid.Valid {
			resp.CurrentHighestBid = &currentHighestBid.Int64
		}
		if acceptedDriverID.Valid {
			driverID, idErr := kernel.UUIDFromBytes(acceptedDriverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.AcceptedDriverID = &driverID
		}

		loads = append(loads, resp)
	}

	return loads, rows.Err()
}

// bidColumns is the SELECT list every bid query shares, in the order
// scanBidRows expects. Column names are prefixed for join queries.
const bidColumns = `
	b.id,
	b.load_id,
	b.driver_id,
	b.amount,
	b.status,
	b.created_at`

func scanBidRows(rows *sql.Rows) ([]BidResponse, error) {
	bids := make([]BidResponse, 0)

	for rows.Next() {
		var resp BidResponse
		var id, loadID, driverID uuid.UUID

		err := rows.Scan(
			&id,
			&loadID,
			&driverID,
			&resp.Amount,
			&resp.Status,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.LoadID, err = kernel.UUIDFromBytes(loadID[:]); err != nil {
			return nil, err
		}
		if resp.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
			return nil, err
		}

		bids = append(bids, resp)
	}

	return bids, rows.Err()
}

// disputeColumns is the SELECT list every dispute query shares, in the order
// scanDisputeRows expects.
const disputeColumns = `
	d.id,
	d.raised_by_id,
	d.load_id,
	d.driver_id,
	d.dispute_type,
	d.message,
	d.status,
	d.resolution_details,
	d.created_at`

func scanDisputeRows(rows *sql.Rows) ([]DisputeResponse, error) {
	disputes := make([]DisputeResponse, 0)

	for rows.Next() {
		var resp DisputeResponse
		var id, raisedByID uuid.UUID
		var loadID, driverID uuid.NullUUID

		err := rows.Scan(
			&id,
			&raisedByID,
			&loadID,
			&driverID,
			&resp.DisputeType,
			&resp.Message,
			&resp.Status,
			&resp.ResolutionDetails,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RaisedByID, err = kernel.UUIDFromBytes(raisedByID[:]); err != nil {
			return nil, err
		}
		if loadID.Valid {
			ref, idErr := kernel.UUIDFromBytes(loadID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.LoadID = &ref
		}
		if driverID.Valid {
			ref, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &ref
		}

		disputes = append(disputes, resp)
	}

	return disputes, rows.Err()
}
