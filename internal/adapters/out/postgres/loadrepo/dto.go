// Package loadrepo provides data transfer objects and mapping functions for
// load persistence. It implements the repository pattern for the load domain
// aggregate, handling the conversion between domain entities and their
// database representation.
package loadrepo

import (
	"time"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO represents the database structure for persisting load aggregates.
// Status is stored as its wire string so the read side can filter without
// knowing the enum ordering. Monetary columns hold whole rupees.
type LoadDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null"`

	GoodsType        string `gorm:"not null"`
	WeightKg         int
	PickupLocation   string
	DeliveryLocation string
	PickupDate       time.Time
	DeliveryDate     time.Time
	Description      string
	ExpectedPrice    *int64

	Status            string `gorm:"index;not null"`
	CurrentHighestBid *int64
	AcceptedDriverID  *uuid.UUID `gorm:"type:uuid;index"`

	PostedAt time.Time
}

// TableName specifies the database table name for load entities.
func (LoadDTO) TableName() string {
	return "loads"
}

// fromDomain converts a load domain aggregate to its database representation.
func fromDomain(l *load.Load) LoadDTO {
	details := l.Details()

	var expectedPrice *int64
	if details.ExpectedPrice != nil {
		amount := details.ExpectedPrice.Amount()
		expectedPrice = &amount
	}

	var highestBid *int64
	if m := l.CurrentHighestBid(); m != nil {
		amount := m.Amount()
		highestBid = &amount
	}

	var acceptedDriverID *uuid.UUID
	if id := l.AcceptedDriver(); id != nil {
		raw := id.Bytes()
		acceptedDriverID = &raw
	}

	return LoadDTO{
		ID:                l.ID().Bytes(),
		OwnerID:           l.OwnerID().Bytes(),
		GoodsType:         details.GoodsType,
		WeightKg:          details.WeightKg,
		PickupLocation:    details.PickupLocation,
		DeliveryLocation:  details.DeliveryLocation,
		PickupDate:        details.PickupDate,
		DeliveryDate:      details.DeliveryDate,
		Description:       details.Description,
		ExpectedPrice:     expectedPrice,
		Status:            l.Status().String(),
		CurrentHighestBid: highestBid,
		AcceptedDriverID:  acceptedDriverID,
		PostedAt:          l.PostedAt(),
	}
}

// toDomain converts a database DTO to a load domain aggregate.
func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := load.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var expectedPrice *kernel.Money
	if dto.ExpectedPrice != nil {
		m, priceErr := kernel.NewMoney(*dto.ExpectedPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		expectedPrice = &m
	}

	var highestBid *kernel.Money
	if dto.CurrentHighestBid != nil {
		m, bidErr := kernel.NewMoney(*dto.CurrentHighestBid)
		if bidErr != nil {
			return nil, bidErr
		}
		highestBid = &m
	}

	var acceptedDriverID *kernel.UUID
	if dto.AcceptedDriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.AcceptedDriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		acceptedDriverID = &dID
	}

	details := load.Details{
		GoodsType:        dto.GoodsType,
		WeightKg:         dto.WeightKg,
		PickupLocation:   dto.PickupLocation,
		DeliveryLocation: dto.DeliveryLocation,
		PickupDate:       dto.PickupDate,
		DeliveryDate:     dto.DeliveryDate,
		Description:      dto.Description,
		ExpectedPrice:    expectedPrice,
	}

	return load.RestoreLoad(id, ownerID, details, status, highestBid, acceptedDriverID, dto.PostedAt)
}
