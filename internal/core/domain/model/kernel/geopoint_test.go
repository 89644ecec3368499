package kernel_test

import (
	"fmt"
	"testing"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(19.1197, 72.9051)

		require.NoError(t, err)
		assert.InDelta(t, 19.1197, point.Latitude(), 1e-9)
		assert.InDelta(t, 72.9051, point.Longitude(), 1e-9)
		require.NoError(t, point.Validate())
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		cases := [][2]float64{
			{kernel.GeoPointMinLatitude, 0},
			{kernel.GeoPointMaxLatitude, 0},
			{0, kernel.GeoPointMinLongitude},
			{0, kernel.GeoPointMaxLongitude},
		}

		for _, c := range cases {
			t.Run(fmt.Sprintf("lat=%.0f lng=%.0f", c[0], c[1]), func(t *testing.T) {
				_, err := kernel.NewGeoPoint(c[0], c[1])
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject out-of-range latitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject out-of-range longitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -181)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(10, 20)
	b, _ := kernel.NewGeoPoint(10, 20)
	c, _ := kernel.NewGeoPoint(10, 21)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
