//go:build unit

package promo_test

import (
	"testing"
	"time"

	"fleetbook/internal/domain/promo"
	"fleetbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PromoBuilder)
	errIs  error
}

func TestPromo(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPromoBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "SUMMER500", actual.Code().String())
		assert.True(t, actual.Discount().IsFlat())
		assert.True(t, actual.Active())
		assert.Equal(t, int32(0), actual.UsageCap())
		assert.Nil(t, actual.LastUsedAt())
	})

	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "lower case input is normalized",
				mutate: func(b *builder.PromoBuilder) { b.WithCode("summer500") },
			},
			{
				name:   "surrounding whitespace is stripped",
				mutate: func(b *builder.PromoBuilder) { b.WithCode("  SUMMER500  ") },
			},
			{
				name:   "too short",
				mutate: func(b *builder.PromoBuilder) { b.WithCode("AB") },
				errIs:  promo.ErrInvalidCode,
			},
			{
				name:   "too long",
				mutate: func(b *builder.PromoBuilder) { b.WithCode("ABCDEFGHIJKLMNOPQRSTU") },
				errIs:  promo.ErrInvalidCode,
			},
			{
				name:   "embedded whitespace",
				mutate: func(b *builder.PromoBuilder) { b.WithCode("SUM MER") },
				errIs:  promo.ErrInvalidCode,
			},
			{
				name:   "symbols rejected",
				mutate: func(b *builder.PromoBuilder) { b.WithCode("SUMMER-500") },
				errIs:  promo.ErrInvalidCode,
			},
		})
	})

	t.Run("discount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid percentage",
				mutate: func(b *builder.PromoBuilder) { b.WithPercentOff(25) },
			},
			{
				name:   "percentage of 100",
				mutate: func(b *builder.PromoBuilder) { b.WithPercentOff(100) },
			},
			{
				name:   "percentage below 1",
				mutate: func(b *builder.PromoBuilder) { b.WithPercentOff(0.5) },
				errIs:  promo.ErrInvalidDiscountPercent,
			},
			{
				name:   "percentage above 100",
				mutate: func(b *builder.PromoBuilder) { b.WithPercentOff(101) },
				errIs:  promo.ErrInvalidDiscountPercent,
			},
			{
				name:   "zero flat amount",
				mutate: func(b *builder.PromoBuilder) { b.WithFlatOff(0) },
				errIs:  promo.ErrInvalidDiscountAmount,
			},
			{
				name:   "negative flat amount",
				mutate: func(b *builder.PromoBuilder) { b.WithFlatOff(-100) },
				errIs:  promo.ErrInvalidDiscountAmount,
			},
			{
				name: "both flat and percentage",
				mutate: func(b *builder.PromoBuilder) {
					flat := int64(500)
					percent := 10.0
					b.FlatOffCents = &flat
					b.PercentOff = &percent
				},
				errIs: promo.ErrAmbiguousDiscount,
			},
			{
				name: "neither flat nor percentage",
				mutate: func(b *builder.PromoBuilder) {
					b.FlatOffCents = nil
					b.PercentOff = nil
				},
				errIs: promo.ErrAmbiguousDiscount,
			},
		})
	})

	t.Run("usage validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative usage cap",
				mutate: func(b *builder.PromoBuilder) { b.WithUsageCap(-1) },
				errIs:  promo.ErrInvalidUsage,
			},
			{
				name:   "negative times used",
				mutate: func(b *builder.PromoBuilder) { b.WithTimesUsed(-1) },
				errIs:  promo.ErrInvalidUsage,
			},
		})
	})
}

func TestPromoEligibilityAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	build := func(mutate func(*builder.PromoBuilder)) *promo.Promo {
		b := builder.NewPromoBuilder().WithValidFrom(&before).WithValidTo(&after)
		if mutate != nil {
			b.With(mutate)
		}
		p, err := b.BuildDomain()
		require.NoError(t, err)
		return p
	}

	t.Run("eligible inside window", func(t *testing.T) {
		assert.NoError(t, build(nil).EligibilityAt(now))
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		p := build(nil)
		assert.NoError(t, p.EligibilityAt(before))
		assert.NoError(t, p.EligibilityAt(after))
	})

	t.Run("inactive", func(t *testing.T) {
		p := build(func(b *builder.PromoBuilder) { b.WithActive(false) })
		assert.ErrorIs(t, p.EligibilityAt(now), promo.ErrInactive)
	})

	t.Run("not yet valid", func(t *testing.T) {
		p := build(nil)
		assert.ErrorIs(t, p.EligibilityAt(before.Add(-time.Second)), promo.ErrNotYetValid)
	})

	t.Run("expired", func(t *testing.T) {
		p := build(nil)
		assert.ErrorIs(t, p.EligibilityAt(after.Add(time.Second)), promo.ErrExpired)
	})

	t.Run("limit reached", func(t *testing.T) {
		p := build(func(b *builder.PromoBuilder) { b.AsExhausted() })
		assert.ErrorIs(t, p.EligibilityAt(now), promo.ErrLimitReached)
	})

	t.Run("zero cap means unlimited", func(t *testing.T) {
		p := build(func(b *builder.PromoBuilder) { b.WithUsageCap(0).WithTimesUsed(1000) })
		assert.NoError(t, p.EligibilityAt(now))
	})

	t.Run("open ended window", func(t *testing.T) {
		p := build(func(b *builder.PromoBuilder) { b.WithValidFrom(nil).WithValidTo(nil) })
		assert.NoError(t, p.EligibilityAt(now.Add(-1000*time.Hour)))
		assert.NoError(t, p.EligibilityAt(now.Add(1000*time.Hour)))
	})

	t.Run("inactive wins over expired", func(t *testing.T) {
		p := build(func(b *builder.PromoBuilder) { b.WithActive(false) })
		assert.ErrorIs(t, p.EligibilityAt(after.Add(time.Hour)), promo.ErrInactive)
	})

	t.Run("not yet valid wins over limit reached", func(t *testing.T) {
		p := build(func(b *builder.PromoBuilder) { b.AsExhausted() })
		assert.ErrorIs(t, p.EligibilityAt(before.Add(-time.Second)), promo.ErrNotYetValid)
	})
}

func TestPromoRecordUse(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	p, err := builder.NewPromoBuilder().WithUsageCap(1).BuildDomain()
	require.NoError(t, err)

	require.NoError(t, p.EligibilityAt(now))
	p.RecordUse(now)

	assert.Equal(t, int32(1), p.TimesUsed())
	require.NotNil(t, p.LastUsedAt())
	assert.Equal(t, now, *p.LastUsedAt())

	assert.ErrorIs(t, p.EligibilityAt(now), promo.ErrLimitReached)
}

func TestReasonForError(t *testing.T) {
	cases := []struct {
		err    error
		reason promo.IneligibilityReason
	}{
		{promo.ErrInactive, promo.ReasonInactive},
		{promo.ErrNotYetValid, promo.ReasonNotYetValid},
		{promo.ErrExpired, promo.ReasonExpired},
		{promo.ErrLimitReached, promo.ReasonLimitReached},
	}
	for _, c := range cases {
		reason, ok := promo.ReasonForError(c.err)
		require.True(t, ok)
		assert.Equal(t, c.reason, reason)
	}

	_, ok := promo.ReasonForError(promo.ErrInvalidCode)
	assert.False(t, ok)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewPromoBuilder().With(c.mutate).BuildDomain()

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
