package account

import (
	"fmt"

	"lorrylink/internal/pkg/errs"
)

// Role represents the capability level of an account. Roles form a closed set;
// unrecognized values are rejected at the boundary instead of being persisted.
//
// There is no role hierarchy: authorization is a flat capability check via
// Role.Can(required), not inheritance.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Admin arbitrates disputes and manages users and loads.
	Admin

	// Driver bids on loads and progresses assigned loads.
	Driver

	// GoodsOwner posts loads and hires drivers.
	GoodsOwner
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Admin:       "admin",
		Driver:      "driver",
		GoodsOwner:  "goods_owner",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:      "admin",
		Driver:     "driver",
		GoodsOwner: "goods_owner",
	}
}

// ParseRole converts a string into a Role, rejecting unrecognized values.
func ParseRole(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a recognized role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: Admin, Driver, GoodsOwner.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role ("admin", "driver", "goods_owner").
// Returns "unknown" for invalid role values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Can reports whether the role satisfies the required capability.
// This is a flat comparison; no role implies another.
func (r Role) Can(required Role) bool {
	return r == required
}
