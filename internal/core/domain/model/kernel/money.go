package kernel

import (
	"fmt"

	"lorrylink/internal/pkg/errs"
	"lorrylink/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using the NewMoney constructor to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money represents a monetary amount in whole rupees. It is used for bid
// amounts, expected prices, and the recorded highest bid on a load.
//
// Money is an immutable value object; amounts must be strictly positive.
// The zero value of Money is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	amount, err := kernel.NewMoney(1500)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(amount) // Output: ₹1500
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value with the given amount in whole rupees.
// The amount must be greater than zero.
func NewMoney(amount int64) (Money, error) {
	if amount <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the monetary amount in whole rupees.
func (m Money) Amount() int64 {
	return m.amount
}

// IsGreaterThan reports whether m exceeds other.
func (m Money) IsGreaterThan(other Money) bool {
	return m.amount > other.amount
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted with a rupee sign, e.g. "₹1500".
func (m Money) String() string {
	return fmt.Sprintf("₹%d", m.amount)
}

// Validate checks that the Money value was constructed via NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
