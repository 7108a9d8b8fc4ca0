package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{name: "valid location", latitude: -34.6037, longitude: -58.3816},
		{name: "valid location at min bounds", latitude: kernel.MinLatitude, longitude: kernel.MinLongitude},
		{name: "valid location at max bounds", latitude: kernel.MaxLatitude, longitude: kernel.MaxLongitude},
		{name: "latitude too small", latitude: -90.5, longitude: 0, wantErr: true},
		{name: "latitude too large", latitude: 91, longitude: 0, wantErr: true},
		{name: "longitude too small", latitude: 0, longitude: -181, wantErr: true},
		{name: "longitude too large", latitude: 0, longitude: 180.01, wantErr: true},
		{name: "latitude is NaN", latitude: math.NaN(), longitude: 0, wantErr: true},
		{name: "longitude is infinite", latitude: 0, longitude: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Equal(t, kernel.Location{}, loc)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, loc.Validate())
			assert.InDelta(t, tt.latitude, loc.Latitude(), 1e-9)
			assert.InDelta(t, tt.longitude, loc.Longitude(), 1e-9)
		})
	}

	t.Run("should report both coordinates when both are invalid", func(t *testing.T) {
		_, err := kernel.NewLocation(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestLocation_Validate(t *testing.T) {
	t.Run("should reject the zero value", func(t *testing.T) {
		var loc kernel.Location

		assert.ErrorIs(t, loc.Validate(), kernel.ErrLocationIsNotConstructed)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, err := kernel.NewLocation(10, 20)
	require.NoError(t, err)
	b, err := kernel.NewLocation(10, 20)
	require.NoError(t, err)
	c, err := kernel.NewLocation(10, 21)
	require.NoError(t, err)

	t.Run("should compare coordinates", func(t *testing.T) {
		eq, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, eq)

		eq, err = a.IsEqual(c)
		require.NoError(t, err)
		assert.False(t, eq)
	})

	t.Run("should fail for an unconstructed operand", func(t *testing.T) {
		_, err := a.IsEqual(kernel.Location{})

		assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}

func TestLocation_String(t *testing.T) {
	loc, err := kernel.NewLocation(1.5, -2.25)
	require.NoError(t, err)

	assert.Equal(t, "Location(1.500000,-2.250000)", loc.String())
}
