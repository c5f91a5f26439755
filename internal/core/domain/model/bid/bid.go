package bid

import (
	"errors"
	"time"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"
)

var (
	// ErrBidIsNotConstructed is returned when a Bid instance was not created through
	// the NewBid or RestoreBid factory methods. This ensures all bids are properly validated.
	ErrBidIsNotConstructed = errors.New("Bid must be created via NewBid constructor")
)

// Bid represents a driver's priced offer to carry a specific load.
//
// Bid follows these invariants:
//   - Must have valid unique, load, and driver identifiers
//   - Amount is a constructed Money value (positive by construction)
//   - Status transitions follow the rules in Status
//   - Can only be created through NewBid or RestoreBid
type Bid struct {
	id kernel.UUID

	// loadID is the load this bid was placed against.
	loadID kernel.UUID

	// driverID is the driver who placed the bid.
	driverID kernel.UUID

	amount kernel.Money

	// status represents the current state in the bid lifecycle.
	status Status

	createdAt time.Time

	isConstructed bool
}

// NewBid creates a new Bid in Pending status by the given driver against the
// given load.
func NewBid(id, loadID, driverID kernel.UUID, amount kernel.Money) (*Bid, error) {
	b := &Bid{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setLoadID(loadID),
		b.setDriverID(driverID),
		b.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBid reconstructs a Bid from persistence, including its status.
// Used by repositories only.
func RestoreBid(
	id, loadID, driverID kernel.UUID,
	amount kernel.Money,
	status Status,
	createdAt time.Time,
) (*Bid, error) {
	b := &Bid{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setLoadID(loadID),
		b.setDriverID(driverID),
		b.setAmount(amount),
		b.setStatus(status),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the Bid instance was properly constructed through a factory method.
func (b *Bid) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBidIsNotConstructed
	}
	return nil
}

// IsEqual compares two bids by their unique identifiers.
func (b *Bid) IsEqual(other *Bid) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bid's unique identifier.
func (b *Bid) ID() kernel.UUID {
	return b.id
}

// LoadID returns the identifier of the load this bid targets.
func (b *Bid) LoadID() kernel.UUID {
	return b.loadID
}

// DriverID returns the identifier of the driver who placed the bid.
func (b *Bid) DriverID() kernel.UUID {
	return b.driverID
}

// Amount returns the offered price.
func (b *Bid) Amount() kernel.Money {
	return b.amount
}

// Status returns the current status of the bid.
func (b *Bid) Status() Status {
	return b.status
}

// CreatedAt returns the time the bid was placed.
func (b *Bid) CreatedAt() time.Time {
	return b.createdAt
}

// IsOwnedBy reports whether the given driver placed this bid.
func (b *Bid) IsOwnedBy(driverID kernel.UUID) bool {
	return b.driverID.IsEqual(driverID)
}

// MarkAwaitingDriver records that the owner hired this bid's driver, who must
// now accept or decline.
func (b *Bid) MarkAwaitingDriver() error {
	newStatus, err := b.status.MarkAwaitingDriver()
	if err != nil {
		return err
	}
	b.status = newStatus
	return nil
}

// Accept records the driver's confirmation of the hire.
func (b *Bid) Accept() error {
	newStatus, err := b.status.Accept()
	if err != nil {
		return err
	}
	b.status = newStatus
	return nil
}

// Decline records the driver's withdrawal or refusal. Idempotent: declining
// an already-declined bid succeeds without effect.
func (b *Bid) Decline() error {
	newStatus, err := b.status.Decline()
	if err != nil {
		return err
	}
	b.status = newStatus
	return nil
}

// MarkNotHired records that the owner hired a rival driver while this bid
// was still pending.
func (b *Bid) MarkNotHired() error {
	newStatus, err := b.status.MarkNotHired()
	if err != nil {
		return err
	}
	b.status = newStatus
	return nil
}

// Reopen turns a dead bid back into a fresh pending offer at a new price.
// The placement time is refreshed so the reopened bid competes as the
// newest, not at its original position.
func (b *Bid) Reopen(amount kernel.Money) error {
	newStatus, err := b.status.Reopen()
	if err != nil {
		return err
	}
	if err := b.setAmount(amount); err != nil {
		return err
	}
	b.status = newStatus
	b.createdAt = time.Now().UTC()
	return nil
}

func (b *Bid) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bid) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadID", err)
	}
	b.loadID = loadID
	return nil
}

func (b *Bid) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}
	b.driverID = driverID
	return nil
}

func (b *Bid) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	b.amount = amount
	return nil
}

func (b *Bid) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.status = status
	return nil
}
