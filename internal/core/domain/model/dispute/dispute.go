package dispute

import (
	"errors"
	"strings"
	"time"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"
)

var (
	// ErrDisputeIsNotConstructed is returned when a Dispute instance was not created
	// through the NewDispute or RestoreDispute factory methods.
	ErrDisputeIsNotConstructed = errors.New("Dispute must be created via NewDispute constructor")
)

// Dispute represents a grievance raised by a driver or goods owner,
// optionally referencing a load, to be arbitrated by an administrator.
//
// Dispute follows these invariants:
//   - Must have a valid unique identifier and a valid raiser
//   - DisputeType and Message are non-empty
//   - Resolution details are only present on closed disputes
//   - Can only be created through NewDispute or RestoreDispute
type Dispute struct {
	id kernel.UUID

	// raisedByID is the account that raised the dispute.
	raisedByID kernel.UUID

	// loadID optionally references the load the dispute concerns.
	loadID *kernel.UUID

	// driverID optionally names the driver the dispute is against.
	driverID *kernel.UUID

	disputeType string
	message     string

	status Status

	resolutionDetails string

	createdAt time.Time

	isConstructed bool
}

// NewDispute creates a new Dispute in Open status raised by the given account.
func NewDispute(
	id, raisedByID kernel.UUID,
	disputeType, message string,
	loadID, driverID *kernel.UUID,
) (*Dispute, error) {
	d := &Dispute{
		status:        Open,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setRaisedByID(raisedByID),
		d.setDisputeType(disputeType),
		d.setMessage(message),
		d.setLoadID(loadID),
		d.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDispute reconstructs a Dispute from persistence. Used by repositories only.
func RestoreDispute(
	id, raisedByID kernel.UUID,
	disputeType, message string,
	loadID, driverID *kernel.UUID,
	status Status,
	resolutionDetails string,
	createdAt time.Time,
) (*Dispute, error) {
	d := &Dispute{
		resolutionDetails: resolutionDetails,
		createdAt:         createdAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setRaisedByID(raisedByID),
		d.setDisputeType(disputeType),
		d.setMessage(message),
		d.setLoadID(loadID),
		d.setDriverID(driverID),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Dispute instance was properly constructed through a factory method.
func (d *Dispute) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDisputeIsNotConstructed
	}
	return nil
}

// IsEqual compares two disputes by their unique identifiers.
func (d *Dispute) IsEqual(other *Dispute) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dispute's unique identifier.
func (d *Dispute) ID() kernel.UUID {
	return d.id
}

// RaisedBy returns the identifier of the account that raised the dispute.
func (d *Dispute) RaisedBy() kernel.UUID {
	return d.raisedByID
}

// LoadID returns the referenced load's identifier, or nil.
func (d *Dispute) LoadID() *kernel.UUID {
	return d.loadID
}

// DriverID returns the identifier of the driver the dispute is against, or nil.
func (d *Dispute) DriverID() *kernel.UUID {
	return d.driverID
}

// DisputeType returns the free-form category of the dispute.
func (d *Dispute) DisputeType() string {
	return d.disputeType
}

// Message returns the raiser's description of the grievance.
func (d *Dispute) Message() string {
	return d.message
}

// Status returns the current arbitration status.
func (d *Dispute) Status() Status {
	return d.status
}

// ResolutionDetails returns the administrator's resolution text.
// Empty until the dispute is closed.
func (d *Dispute) ResolutionDetails() string {
	return d.resolutionDetails
}

// CreatedAt returns the time the dispute was raised.
func (d *Dispute) CreatedAt() time.Time {
	return d.createdAt
}

// WasRaisedBy reports whether the given account raised this dispute.
func (d *Dispute) WasRaisedBy(accountID kernel.UUID) bool {
	return d.raisedByID.IsEqual(accountID)
}

// MarkUnderReview records that an administrator picked up the dispute.
func (d *Dispute) MarkUnderReview() error {
	if d.status != Open {
		return errs.NewInvalidStateError("review dispute", d.status.String())
	}
	d.status = UnderReview
	return nil
}

// Resolve closes the dispute with the administrator's resolution text.
//
// The terminal status is chosen as follows: an explicit status, when given,
// always wins; otherwise it is inferred from the resolution text, where any
// occurrence of "reject" (case-insensitive) closes the dispute as Rejected
// and anything else as Resolved.
//
// An explicit status must be terminal; a closed dispute cannot be resolved
// again.
func (d *Dispute) Resolve(resolution string, explicit *Status) error {
	if d.status.IsClosed() {
		return errs.NewInvalidStateError("resolve dispute", d.status.String())
	}
	if resolution == "" {
		return errs.NewValueIsRequiredError("resolution")
	}

	newStatus := Resolved
	if strings.Contains(strings.ToLower(resolution), "reject") {
		newStatus = Rejected
	}

	if explicit != nil {
		if err := explicit.Validate(); err != nil {
			return err
		}
		if !explicit.IsClosed() {
			return errs.NewValueIsInvalidError("status")
		}
		newStatus = *explicit
	}

	d.status = newStatus
	d.resolutionDetails = resolution
	return nil
}

func (d *Dispute) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dispute) setRaisedByID(raisedByID kernel.UUID) error {
	if err := raisedByID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("raisedByID", err)
	}
	d.raisedByID = raisedByID
	return nil
}

func (d *Dispute) setDisputeType(disputeType string) error {
	if disputeType == "" {
		return errs.NewValueIsRequiredError("disputeType")
	}
	d.disputeType = disputeType
	return nil
}

func (d *Dispute) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	d.message = message
	return nil
}

func (d *Dispute) setLoadID(loadID *kernel.UUID) error {
	if loadID == nil {
		return nil
	}
	if err := loadID.Validate(); err != nil {
		return err
	}
	d.loadID = loadID
	return nil
}

func (d *Dispute) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	d.driverID = driverID
	return nil
}

func (d *Dispute) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
