package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database. Returns a ConflictError if the
// username or email is already taken; the unique indexes back the check, so
// concurrent registrations cannot both succeed.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	var taken int64
	err := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("username = ? OR email = ?", dto.Username, dto.Email).
		Count(&taken).Error
	if err != nil {
		return err
	}
	if taken > 0 {
		return errs.NewConflictError(
			fmt.Sprintf("username %q or email %q is already taken", dto.Username, dto.Email))
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				fmt.Sprintf("username %q or email %q is already taken", dto.Username, dto.Email), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing account to the database.
// Select("*") forces zero-valued columns through as well, so a deactivation
// (active = false) is not silently skipped.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
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

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves an account by its unique username.
func (r *GormAccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", username)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an account by its unique email address.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an account together with everything that hangs off it: bids
// the account placed, loads it posted (and the bids and disputes referencing
// those loads), and disputes it raised. All statements run on the repository's
// connection, so inside a unit of work the removal is atomic.
func (r *GormAccountRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	raw := id.Bytes()

	err := db.Exec(`
		DELETE FROM bids
		WHERE driver_id = ?
		   OR load_id IN (SELECT id FROM loads WHERE owner_id = ?)
	`, raw, raw).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		DELETE FROM disputes
		WHERE raised_by_id = ?
		   OR load_id IN (SELECT id FROM loads WHERE owner_id = ?)
	`, raw, raw).Error
	if err != nil {
		return err
	}

	// A deleted driver may still be referenced as the accepted driver on
	// someone else's load; clear the reference instead of leaving it dangling.
	err = db.Exec(`UPDATE loads SET accepted_driver_id = NULL WHERE accepted_driver_id = ?`, raw).Error
	if err != nil {
		return err
	}

	if err = db.Exec(`DELETE FROM loads WHERE owner_id = ?`, raw).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", raw).Delete(&AccountDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", id.String())
	}

	return nil
}
