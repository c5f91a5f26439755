package loadrepo

import (
	"context"
	"errors"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/core/domain/model/load"
	"lorrylink/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLoadRepository implements LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLoadRepository creates a new GORM load repository.
func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new load to the database.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing load to the database.
// Select("*") forces zero-valued columns through as well, so a declined hire
// actually clears accepted_driver_id instead of being skipped as a zero value.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LoadDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a load by ID.
func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// RaiseHighestBid lifts the stored highest bid to amount in a single
// conditional UPDATE. The comparison happens inside the statement, so two
// drivers bidding concurrently can never regress the record: whichever
// statement runs second sees the other's value and only overwrites it if
// its own amount is higher.
func (r *GormLoadRepository) RaiseHighestBid(
	ctx context.Context,
	loadID kernel.UUID,
	amount kernel.Money,
) (bool, error) {
	if err := loadID.Validate(); err != nil {
		return false, err
	}
	if err := amount.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&LoadDTO{}).
		Where("id = ? AND (current_highest_bid IS NULL OR current_highest_bid < ?)",
			loadID.Bytes(), amount.Amount()).
		Update("current_highest_bid", amount.Amount())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
