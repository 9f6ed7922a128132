package guard_test

import (
	"errors"
	"testing"

	"depot/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("Truck must be created via NewTruck")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies_keep_the_mark", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, copied.Validate(nil))
	})
}

// TestConstructorGuardEmbedded mirrors how the domain embeds the guard.
func TestConstructorGuardEmbedded(t *testing.T) {
	errPlateNotConstructed := errors.New("plate must be created via newPlate")

	type plate struct {
		value string
		guard guard.ConstructorGuard
	}

	newPlate := func(value string) (plate, error) {
		if value == "" {
			return plate{}, errors.New("plate is required")
		}
		return plate{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed", func(t *testing.T) {
		p, err := newPlate("AB-123-CD")

		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPlateNotConstructed))
	})

	t.Run("rejected_input_returns_zero_value", func(t *testing.T) {
		p, err := newPlate("")

		require.Error(t, err)
		assert.Equal(t, errPlateNotConstructed, p.guard.Validate(errPlateNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
