// Package bidrepo provides data transfer objects and mapping functions for bid
// persistence. It implements the repository pattern for the bid domain
// aggregate, handling the conversion between domain entities and their
// database representation.
package bidrepo

import (
	"time"

	"lorrylink/internal/core/domain/model/bid"
	"lorrylink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BidDTO represents the database structure for persisting bid aggregates.
// The composite unique index on (load_id, driver_id) enforces the one bid
// per driver per load rule even under concurrent placement.
type BidDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadID    uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_bids_load_driver;not null"`
	DriverID  uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_bids_load_driver;not null"`
	Amount    int64     `gorm:"not null"`
	Status    string    `gorm:"index;not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for bid entities.
func (BidDTO) TableName() string {
	return "bids"
}

// fromDomain converts a bid domain aggregate to its database representation.
func fromDomain(b *bid.Bid) BidDTO {
	return BidDTO{
		ID:        b.ID().Bytes(),
		LoadID:    b.LoadID().Bytes(),
		DriverID:  b.DriverID().Bytes(),
		Amount:    b.Amount().Amount(),
		Status:    b.Status().String(),
		CreatedAt: b.CreatedAt(),
	}
}

// toDomain converts a database DTO to a bid domain aggregate.
func toDomain(dto BidDTO) (*bid.Bid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loadID, err := kernel.UUIDFromBytes(dto.LoadID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	status, err := bid.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return bid.RestoreBid(id, loadID, driverID, amount, status, dto.CreatedAt)
}
