package dispute

import (
	"fmt"

	"lorrylink/internal/pkg/errs"
)

// Status represents the arbitration state of a dispute.
//
// Transitions:
//
//	Open ──> UnderReview ──> Resolved
//	   │          │
//	   └──────────┴──> Rejected
//
// Resolution may skip UnderReview; Resolved and Rejected are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status: the dispute awaits an administrator.
	Open

	// UnderReview means an administrator has picked up the dispute.
	UnderReview

	// Resolved means the dispute was closed in the raiser's favor.
	Resolved

	// Rejected means the dispute was closed without remedy.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Open:        "open",
		UnderReview: "under_review",
		Resolved:    "resolved",
		Rejected:    "rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:        "open",
		UnderReview: "under_review",
		Resolved:    "resolved",
		Rejected:    "rejected",
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause("dispute status",
		fmt.Errorf("%q is not a recognized dispute status", s))
}

// Validate checks if the Status value is a member of the closed status set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("dispute status",
			fmt.Errorf("%d is not a valid dispute status", s))
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

// IsClosed reports whether the dispute has reached a terminal status.
func (s Status) IsClosed() bool {
	return s == Resolved || s == Rejected
}
