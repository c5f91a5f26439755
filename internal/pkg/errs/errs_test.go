package errs_test

import (
	"errors"
	"testing"

	"lorrylink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("loadId", "123")

		assert.Equal(t, "loadId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("loadId", "123", cause)

		assert.Equal(t, "loadId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: loadId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestForbiddenError(t *testing.T) {
	t.Run("NewForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("caller does not own the load")

		assert.Equal(t, "caller does not own the load", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "operation is forbidden: caller does not own the load", err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})

	t.Run("NewForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("role mismatch")
		err := errs.NewForbiddenErrorWithCause("caller is not an admin", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"operation is forbidden: caller is not an admin (cause: role mismatch)",
			err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("place bid", "completed")

		assert.Equal(t, "place bid", err.Operation)
		assert.Equal(t, "completed", err.Status)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"operation is not allowed in the current state: place bid is not allowed while status is completed",
			err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("load already assigned")
		err := errs.NewInvalidStateErrorWithCause("hire driver", "assigned", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "hire driver is not allowed while status is assigned")
		assert.Contains(t, err.Error(), "load already assigned")
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("driver already bid on this load")

		assert.Equal(t, "driver already bid on this load", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"operation conflicts with existing state: driver already bid on this load",
			err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint")
		err := errs.NewConflictErrorWithCause("email already registered", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"operation conflicts with existing state: email already registered (cause: unique constraint)",
			err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("username")

		assert.Equal(t, "username", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: username", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("username", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: username (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("text", errors.New("hello\nworld"))
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrForbidden)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrConflict)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrValueIsInvalid)
	})

	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("bidId", "42"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewForbiddenError("no"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewInvalidStateError("accept bid", "declined"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewConflictError("duplicate"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewValueIsRequiredError("username"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
	})
}
