package load

import (
	"errors"
	"fmt"
	"time"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"
)

var (
	// ErrLoadIsNotConstructed is returned when a Load instance was not created through
	// the NewLoad or RestoreLoad factory methods. This ensures all loads are properly validated.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad constructor")
)

// Details carries the descriptive fields of a load posting. It is a plain
// parameter object; validation happens in the Load constructor.
type Details struct {
	GoodsType        string
	WeightKg         int
	PickupLocation   string
	DeliveryLocation string
	PickupDate       time.Time
	DeliveryDate     time.Time
	Description      string
	ExpectedPrice    *kernel.Money
}

// Load represents a shipment job posted by a goods owner. It is the aggregate
// root for the bidding lifecycle, from posting through the hire handshake to
// completion.
//
// Load follows these invariants:
//   - Must have valid unique and owner identifiers
//   - GoodsType and both locations are non-empty; weight is positive
//   - AcceptedDriver, when set, names the driver of the hire handshake; the
//     use-case layer guarantees a matching bid row exists
//   - CurrentHighestBid, when set, equals the maximum amount among
//     non-declined bids at last update (maintained incrementally)
//   - Status transitions follow the rules in Status, except for the
//     administrative override which accepts any recognized status
//   - Can only be created through NewLoad or RestoreLoad
type Load struct {
	id kernel.UUID

	// ownerID is the goods owner who posted the load.
	ownerID kernel.UUID

	details Details

	// status represents the current state in the load lifecycle.
	status Status

	// currentHighestBid is the best-effort running maximum of non-declined
	// bid amounts (nil before the first bid).
	currentHighestBid *kernel.Money

	// acceptedDriverID is the provisionally or finally hired driver (nil if none).
	acceptedDriverID *kernel.UUID

	postedAt time.Time

	isConstructed bool
}

// NewLoad creates a new Load in Pending status owned by the given goods owner.
func NewLoad(id, ownerID kernel.UUID, details Details) (*Load, error) {
	l := &Load{
		status:        Pending,
		postedAt:      time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setOwnerID(ownerID),
		l.setDetails(details),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLoad reconstructs a Load from persistence, including its status,
// highest bid, and accepted driver. Used by repositories only.
func RestoreLoad(
	id, ownerID kernel.UUID,
	details Details,
	status Status,
	currentHighestBid *kernel.Money,
	acceptedDriverID *kernel.UUID,
	postedAt time.Time,
) (*Load, error) {
	l := &Load{
		postedAt:      postedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setOwnerID(ownerID),
		l.setDetails(details),
		l.setStatus(status),
	); err != nil {
		return nil, err
	}

	if currentHighestBid != nil {
		if err := currentHighestBid.Validate(); err != nil {
			return nil, err
		}
		l.currentHighestBid = currentHighestBid
	}

	if acceptedDriverID != nil {
		if err := acceptedDriverID.Validate(); err != nil {
			return nil, err
		}
		l.acceptedDriverID = acceptedDriverID
	}

	return l, nil
}

// Validate ensures the Load instance was properly constructed through a factory method.
func (l *Load) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoadIsNotConstructed
	}
	return nil
}

// IsEqual compares two loads by their unique identifiers.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the load's unique identifier.
func (l *Load) ID() kernel.UUID {
	return l.id
}

// OwnerID returns the posting goods owner's identifier.
func (l *Load) OwnerID() kernel.UUID {
	return l.ownerID
}

// Details returns the descriptive fields of the posting.
func (l *Load) Details() Details {
	return l.details
}

// Status returns the current status of the load.
func (l *Load) Status() Status {
	return l.status
}

// CurrentHighestBid returns the recorded highest bid amount.
// Returns nil if no bid has been placed.
func (l *Load) CurrentHighestBid() *kernel.Money {
	return l.currentHighestBid
}

// AcceptedDriver returns the provisionally or finally hired driver's ID.
// Returns nil if no driver is hired.
func (l *Load) AcceptedDriver() *kernel.UUID {
	return l.acceptedDriverID
}

// PostedAt returns the time the load was posted.
func (l *Load) PostedAt() time.Time {
	return l.postedAt
}

// IsOwnedBy reports whether the given account posted this load.
func (l *Load) IsOwnedBy(ownerID kernel.UUID) bool {
	return l.ownerID.IsEqual(ownerID)
}

// ValidateBiddable returns an InvalidStateError unless the load currently
// accepts bids (Pending or Active).
func (l *Load) ValidateBiddable() error {
	if !l.status.IsBiddable() {
		return errs.NewInvalidStateError("place bid", l.status.String())
	}
	return nil
}

// RaiseHighestBid lifts the recorded highest bid to amount if it exceeds the
// current value (or none is recorded). Returns true when the record moved.
//
// This is the in-memory mirror of the repository's atomic conditional update;
// both are max-wins, so concurrent bids cannot regress the record.
func (l *Load) RaiseHighestBid(amount kernel.Money) (bool, error) {
	if err := amount.Validate(); err != nil {
		return false, err
	}

	if l.currentHighestBid == nil || amount.IsGreaterThan(*l.currentHighestBid) {
		l.currentHighestBid = &amount
		return true, nil
	}
	return false, nil
}

// Hire provisionally selects a driver for the load and moves it into the
// two-party handshake.
//
// This method enforces the following business rules:
//   - The driver ID must be valid
//   - The load must be in Pending or Active status
//
// After a successful hire, the load's status is AwaitingDriverResponse and
// AcceptedDriver() returns the selected driver, who must now accept or decline.
func (l *Load) Hire(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := l.status.Hire()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.acceptedDriverID = &driverID
	return nil
}

// AcceptHire finalizes the handshake: the hired driver accepted, the load
// becomes Assigned and the driver is recorded as accepted.
func (l *Load) AcceptHire(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := l.status.Accept()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.acceptedDriverID = &driverID
	return nil
}

// DeclineHire reverts the handshake if the declining driver is the
// provisionally hired one: the load returns to Pending and the accepted
// driver is cleared, freeing it for rehire. Declines by any other driver,
// or outside the handshake, leave the load untouched.
//
// Returns true when the load was reverted.
func (l *Load) DeclineHire(driverID kernel.UUID) (bool, error) {
	if err := driverID.Validate(); err != nil {
		return false, err
	}

	if l.status != AwaitingDriverResponse ||
		l.acceptedDriverID == nil ||
		!l.acceptedDriverID.IsEqual(driverID) {
		return false, nil
	}

	newStatus, err := l.status.RevertToPending()
	if err != nil {
		return false, err
	}

	l.status = newStatus
	l.acceptedDriverID = nil
	return true, nil
}

// OverrideStatus writes any recognized status with no transition-table
// validation. This is the administrative escape hatch, not a guarded
// transition; callers gate it by role, not by the state machine.
func (l *Load) OverrideStatus(newStatus Status) error {
	return l.setStatus(newStatus)
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	l.ownerID = ownerID
	return nil
}

func (l *Load) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}

func (l *Load) setDetails(details Details) error {
	if details.GoodsType == "" {
		return errs.NewValueIsRequiredError("goodsType")
	}
	if details.PickupLocation == "" {
		return errs.NewValueIsRequiredError("pickupLocation")
	}
	if details.DeliveryLocation == "" {
		return errs.NewValueIsRequiredError("deliveryLocation")
	}
	if details.WeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%d is not greater than 0", details.WeightKg))
	}
	if details.ExpectedPrice != nil {
		if err := details.ExpectedPrice.Validate(); err != nil {
			return err
		}
	}

	l.details = details
	return nil
}
