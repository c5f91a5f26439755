package load

import (
	"fmt"

	"lorrylink/internal/pkg/errs"
)

// Status represents the lifecycle state of a load.
// It implements a state machine with defined transitions for the bidding
// handshake, plus an unvalidated override path used by administrators.
//
// Guarded transitions:
//
//	Pending ──> AwaitingDriverResponse ──> Assigned
//	   ^                  │
//	   └──────────────────┘
//	       (driver declined, load freed for rehire)
//
// Assigned, InTransit, Completed, and Cancelled are reached through the
// Override path, which accepts any recognized status without a transition
// table. Completed and Cancelled are terminal by convention only; no guard
// prevents an override from leaving them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the load is posted and open for bids.
	Pending

	// Active marks a load that is open for bids and visible to drivers.
	// Kept distinct from Pending for compatibility with owner dashboards;
	// both are biddable.
	Active

	// AwaitingDriverResponse means the owner has provisionally hired a driver
	// who must now accept or decline.
	AwaitingDriverResponse

	// Assigned means the hired driver accepted and the load is theirs.
	Assigned

	// InTransit means the driver has picked up the goods.
	InTransit

	// Completed means the load has been delivered.
	Completed

	// Cancelled means the load was withdrawn.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "unknown",
		Pending:                "pending",
		Active:                 "active",
		AwaitingDriverResponse: "awaiting_driver_response",
		Assigned:               "assigned",
		InTransit:              "in_transit",
		Completed:              "completed",
		Cancelled:              "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:                "pending",
		Active:                 "active",
		AwaitingDriverResponse: "awaiting_driver_response",
		Assigned:               "assigned",
		InTransit:              "in_transit",
		Completed:              "completed",
		Cancelled:              "cancelled",
	}
}

// ParseStatus converts a wire string into a Status, rejecting unrecognized
// values. This is the boundary guard that keeps arbitrary strings out of the
// status column.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("load status",
		fmt.Errorf("%q is not a recognized load status", s))
}

// Validate checks if the Status value is a member of the closed status set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("load status",
			fmt.Errorf("%d is not a valid load status", s))
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

// IsBiddable reports whether drivers may place bids against this status.
// Only Pending and Active loads are biddable.
func (s Status) IsBiddable() bool {
	return s == Pending || s == Active
}

// Hire transitions the status to AwaitingDriverResponse.
//
// Valid transitions:
//   - Pending -> AwaitingDriverResponse
//   - Active -> AwaitingDriverResponse
//
// Any other current status rejects the hire: a load already in the handshake,
// assigned, in transit, or closed cannot be hired again without the driver
// first declining or an override resetting it.
func (s Status) Hire() (Status, error) {
	if s != Pending && s != Active {
		return 0, errs.NewInvalidStateError("hire driver", s.String())
	}
	return AwaitingDriverResponse, nil
}

// Accept transitions the status to Assigned.
//
// Valid transitions:
//   - AwaitingDriverResponse -> Assigned (driver accepted the hire)
//   - Active -> Assigned (legacy path where hire marked the load active)
func (s Status) Accept() (Status, error) {
	if s != AwaitingDriverResponse && s != Active {
		return 0, errs.NewInvalidStateError("accept bid", s.String())
	}
	return Assigned, nil
}

// RevertToPending transitions the status back to Pending after the
// provisionally hired driver declined.
//
// Valid transitions:
//   - AwaitingDriverResponse -> Pending
func (s Status) RevertToPending() (Status, error) {
	if s != AwaitingDriverResponse {
		return 0, errs.NewInvalidStateError("revert to pending", s.String())
	}
	return Pending, nil
}
