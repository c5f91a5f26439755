package guard_test

import (
	"errors"
	"testing"

	"lorrylink/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("should not be returned")))
	})

	t.Run("zero value guard fails with provided error", func(t *testing.T) {
		var g guard.ConstructorGuard
		wantErr := errors.New("command must be created via its constructor")

		err := g.Validate(wantErr)
		assert.Equal(t, wantErr, err)
	})

	t.Run("zero value guard fails with default error when nil is passed", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("constructed guard with nil error passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	type guarded struct {
		guard guard.ConstructorGuard
	}

	t.Run("struct built via constructor validates", func(t *testing.T) {
		g := guarded{guard: guard.NewConstructorGuard()}
		require.NoError(t, g.guard.Validate(nil))
	})

	t.Run("struct literal without constructor fails", func(t *testing.T) {
		var g guarded
		require.Error(t, g.guard.Validate(nil))
	})
}
