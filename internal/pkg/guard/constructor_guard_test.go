package guard_test

import (
	"errors"
	"testing"

	"suqia/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates the intended embedding pattern.
func TestConstructorGuardUsageExample(t *testing.T) {
	type rating struct {
		stars int
		guard guard.ConstructorGuard
	}

	var errRatingNotConstructed = errors.New("rating must be created via newRating")

	newRating := func(stars int) (rating, error) {
		if stars < 1 || stars > 5 {
			return rating{}, errors.New("stars must be between 1 and 5")
		}
		return rating{stars: stars, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		r, err := newRating(4)

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errRatingNotConstructed))
		assert.Equal(t, 4, r.stars)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var r rating

		err := r.guard.Validate(errRatingNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errRatingNotConstructed, err)
	})
}
