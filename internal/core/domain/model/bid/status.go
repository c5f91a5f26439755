package bid

import (
	"fmt"

	"lorrylink/internal/pkg/errs"
)

// Status represents the lifecycle state of a bid.
//
// Guarded transitions:
//
//	Pending ──> AwaitingDriverResponse ──> Accepted
//	   │                  │
//	   │                  └──> Declined ──> Pending
//	   ├──> Declined
//	   └──> NotHiredByOwner ──> AwaitingDriverResponse
//	                  │
//	                  └──> Pending
//
// Decline is idempotent: declining an already-declined bid succeeds without
// changing anything. A parked bid (NotHiredByOwner) becomes hireable again
// when the originally hired driver declines and the owner picks this driver
// instead. A dead bid (Declined or NotHiredByOwner) reopens to Pending when
// the driver bids on the load again, so one row per (driver, load) covers
// the whole history. Accepted is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the bid is placed and awaiting the
	// owner's decision.
	Pending

	// AwaitingDriverResponse means the owner hired this bid's driver, who
	// must now accept or decline.
	AwaitingDriverResponse

	// Accepted means the driver confirmed the hire and won the load.
	Accepted

	// Declined means the driver withdrew or turned down the hire.
	Declined

	// NotHiredByOwner means the owner hired a rival driver while this bid
	// was still pending.
	NotHiredByOwner
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "unknown",
		Pending:                "pending",
		AwaitingDriverResponse: "awaiting_driver_response",
		Accepted:               "accepted",
		Declined:               "declined",
		NotHiredByOwner:        "not_hired_by_owner",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:                "pending",
		AwaitingDriverResponse: "awaiting_driver_response",
		Accepted:               "accepted",
		Declined:               "declined",
		NotHiredByOwner:        "not_hired_by_owner",
	}
}

// ParseStatus converts a wire string into a Status, rejecting unrecognized
// values.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("bid status",
		fmt.Errorf("%q is not a recognized bid status", s))
}

// Validate checks if the Status value is a member of the closed status set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("bid status",
			fmt.Errorf("%d is not a valid bid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer and is
// safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the bid still binds the driver: it is pending or
// the driver is being asked to confirm a hire.
func (s Status) IsActive() bool {
	return s == Pending || s == AwaitingDriverResponse
}

// MarkAwaitingDriver transitions the status to AwaitingDriverResponse when
// the owner hires this bid's driver. A bid parked by an earlier rival hire
// is hireable again once the load has reverted to pending.
//
// Valid transitions:
//   - Pending -> AwaitingDriverResponse
//   - NotHiredByOwner -> AwaitingDriverResponse
func (s Status) MarkAwaitingDriver() (Status, error) {
	if s != Pending && s != NotHiredByOwner {
		return 0, errs.NewInvalidStateError("hire driver", s.String())
	}
	return AwaitingDriverResponse, nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - AwaitingDriverResponse -> Accepted
//
// A bid the owner never hired cannot be accepted by the driver.
func (s Status) Accept() (Status, error) {
	if s != AwaitingDriverResponse {
		return 0, errs.NewInvalidStateError("accept bid", s.String())
	}
	return Accepted, nil
}

// Decline transitions the status to Declined. Declining an already-declined
// bid is a no-op success, so retries from the driver's side are harmless.
//
// Valid transitions:
//   - Pending -> Declined (driver withdraws the bid)
//   - AwaitingDriverResponse -> Declined (driver turns down the hire)
//   - Declined -> Declined
func (s Status) Decline() (Status, error) {
	if s != Pending && s != AwaitingDriverResponse && s != Declined {
		return 0, errs.NewInvalidStateError("decline bid", s.String())
	}
	return Declined, nil
}

// MarkNotHired transitions the status to NotHiredByOwner when the owner
// hires a rival driver.
//
// Valid transitions:
//   - Pending -> NotHiredByOwner
func (s Status) MarkNotHired() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("mark not hired", s.String())
	}
	return NotHiredByOwner, nil
}

// Reopen transitions a dead bid back to Pending when the driver bids on the
// load again. A live or accepted bid cannot be reopened.
//
// Valid transitions:
//   - Declined -> Pending
//   - NotHiredByOwner -> Pending
func (s Status) Reopen() (Status, error) {
	if s != Declined && s != NotHiredByOwner {
		return 0, errs.NewInvalidStateError("reopen bid", s.String())
	}
	return Pending, nil
}
