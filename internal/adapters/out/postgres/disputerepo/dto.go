// Package disputerepo provides data transfer objects and mapping functions for
// dispute persistence. It implements the repository pattern for the dispute
// domain aggregate, handling the conversion between domain entities and their
// database representation.
package disputerepo

import (
	"time"

	"lorrylink/internal/core/domain/model/dispute"
	"lorrylink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DisputeDTO represents the database structure for persisting dispute
// aggregates. Load and driver references are nullable: a dispute may concern
// the platform generally rather than a specific load or driver.
type DisputeDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RaisedByID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	LoadID      *uuid.UUID `gorm:"type:uuid;index"`
	DriverID    *uuid.UUID `gorm:"type:uuid;index"`
	DisputeType string     `gorm:"not null"`
	Message     string     `gorm:"not null"`

	Status            string `gorm:"index;not null"`
	ResolutionDetails string

	CreatedAt time.Time
}

// TableName specifies the database table name for dispute entities.
func (DisputeDTO) TableName() string {
	return "disputes"
}

// fromDomain converts a dispute domain aggregate to its database representation.
func fromDomain(d *dispute.Dispute) DisputeDTO {
	var loadID *uuid.UUID
	if id := d.LoadID(); id != nil {
		raw := id.Bytes()
		loadID = &raw
	}

	var driverID *uuid.UUID
	if id := d.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return DisputeDTO{
		ID:                d.ID().Bytes(),
		RaisedByID:        d.RaisedBy().Bytes(),
		LoadID:            loadID,
		DriverID:          driverID,
		DisputeType:       d.DisputeType(),
		Message:           d.Message(),
		Status:            d.Status().String(),
		ResolutionDetails: d.ResolutionDetails(),
		CreatedAt:         d.CreatedAt(),
	}
}

// toDomain converts a database DTO to a dispute domain aggregate.
func toDomain(dto DisputeDTO) (*dispute.Dispute, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	raisedByID, err := kernel.UUIDFromBytes(dto.RaisedByID[:])
	if err != nil {
		return nil, err
	}

	var loadID *kernel.UUID
	if dto.LoadID != nil {
		lID, loadErr := kernel.UUIDFromBytes((*dto.LoadID)[:])
		if loadErr != nil {
			return nil, loadErr
		}
		loadID = &lID
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := dispute.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return dispute.RestoreDispute(
		id,
		raisedByID,
		dto.DisputeType,
		dto.Message,
		loadID,
		driverID,
		status,
		dto.ResolutionDetails,
		dto.CreatedAt,
	)
}
