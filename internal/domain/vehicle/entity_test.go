//go:build unit

package vehicle_test

import (
	"strings"
	"testing"

	"fleetbook/internal/domain/vehicle"
	"fleetbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.VehicleBuilder)
	errIs  error
}

func TestVehicle(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewVehicleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Compact Sedan", actual.Name())
		assert.Equal(t, int64(200000), actual.PricePerDayCents())
		assert.Equal(t, vehicle.StatusActive, actual.Status())
		assert.True(t, actual.Rentable())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.VehicleBuilder) { b.WithName("") },
				errIs:  vehicle.ErrEmptyVehicleName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.VehicleBuilder) { b.WithName("   ") },
				errIs:  vehicle.ErrEmptyVehicleName,
			},
			{
				name:   "maximum length name",
				mutate: func(b *builder.VehicleBuilder) { b.WithName(strings.Repeat("a", vehicle.MaxVehicleNameLength)) },
			},
			{
				name:   "name exceeds maximum length",
				mutate: func(b *builder.VehicleBuilder) { b.WithName(strings.Repeat("a", vehicle.MaxVehicleNameLength+1)) },
				errIs:  vehicle.ErrVehicleNameTooLong,
			},
			{
				name:   "surrounding whitespace is trimmed",
				mutate: func(b *builder.VehicleBuilder) { b.WithName("  Cargo Van  ") },
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "positive price",
				mutate: func(b *builder.VehicleBuilder) { b.WithPricePerDayCents(1) },
			},
			{
				name:   "zero price",
				mutate: func(b *builder.VehicleBuilder) { b.WithPricePerDayCents(0) },
				errIs:  vehicle.ErrInvalidDailyPrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.VehicleBuilder) { b.WithPricePerDayCents(-100) },
				errIs:  vehicle.ErrInvalidDailyPrice,
			},
		})
	})

	t.Run("status validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unknown status",
				mutate: func(b *builder.VehicleBuilder) { b.WithStatus(vehicle.Status("retired")) },
				errIs:  vehicle.ErrInvalidStatus,
			},
			{
				name:   "empty status",
				mutate: func(b *builder.VehicleBuilder) { b.WithStatus(vehicle.Status("")) },
				errIs:  vehicle.ErrInvalidStatus,
			},
		})
	})

	t.Run("rentable by status", func(t *testing.T) {
		cases := []struct {
			status   vehicle.Status
			rentable bool
		}{
			{vehicle.StatusDraft, false},
			{vehicle.StatusPublished, true},
			{vehicle.StatusActive, true},
			{vehicle.StatusMaintenance, false},
		}
		for _, c := range cases {
			assert.Equal(t, c.rentable, c.status.Rentable(), "status %s", c.status)
		}
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewVehicleBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
