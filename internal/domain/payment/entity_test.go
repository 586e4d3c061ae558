//go:build unit

package payment_test

import (
	"strings"
	"testing"
	"time"

	"fleetbook/internal/domain/payment"
	"fleetbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PaymentIntentBuilder)
	errIs  error
}

func TestIntent(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPaymentIntentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, payment.PurposeBooking, actual.Purpose())
		assert.Equal(t, payment.StatusPending, actual.Status())
		assert.Equal(t, int64(367500), actual.AmountCents())
		assert.Equal(t, "card", actual.Method())
		require.NotNil(t, actual.ReservationID())
		assert.Nil(t, actual.ExtensionID())
		assert.Nil(t, actual.ExternalTxnRef())
		assert.Nil(t, actual.SettledAt())
	})

	t.Run("amount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "one cent",
				mutate: func(b *builder.PaymentIntentBuilder) { b.WithAmountCents(1) },
			},
			{
				name:   "zero amount",
				mutate: func(b *builder.PaymentIntentBuilder) { b.WithAmountCents(0) },
				errIs:  payment.ErrInvalidAmount,
			},
			{
				name:   "negative amount",
				mutate: func(b *builder.PaymentIntentBuilder) { b.WithAmountCents(-500) },
				errIs:  payment.ErrInvalidAmount,
			},
		})
	})

	t.Run("method validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty method",
				mutate: func(b *builder.PaymentIntentBuilder) { b.WithMethod("") },
				errIs:  payment.ErrInvalidMethod,
			},
			{
				name:   "whitespace only method",
				mutate: func(b *builder.PaymentIntentBuilder) { b.WithMethod("   ") },
				errIs:  payment.ErrInvalidMethod,
			},
			{
				name:   "maximum length method",
				mutate: func(b *builder.PaymentIntentBuilder) { b.WithMethod(strings.Repeat("x", payment.MaxMethodLength)) },
			},
			{
				name:   "method exceeds maximum length",
				mutate: func(b *builder.PaymentIntentBuilder) { b.WithMethod(strings.Repeat("x", payment.MaxMethodLength+1)) },
				errIs:  payment.ErrMethodTooLong,
			},
		})
	})

	t.Run("purpose wiring", func(t *testing.T) {
		balance, err := builder.NewPaymentIntentBuilder().WithPurpose(payment.PurposeBalance).BuildDomain()
		require.NoError(t, err)
		assert.NotNil(t, balance.ReservationID())
		assert.Nil(t, balance.ExtensionID())

		ext, err := builder.NewPaymentIntentBuilder().WithPurpose(payment.PurposeExtension).BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, ext.ReservationID())
		assert.NotNil(t, ext.ExtensionID())
	})
}

func TestIntentSettle(t *testing.T) {
	settledAt := time.Date(2026, 6, 20, 9, 30, 0, 0, time.UTC)

	newIntent := func(t *testing.T) *payment.Intent {
		t.Helper()
		i, err := builder.NewPaymentIntentBuilder().BuildDomain()
		require.NoError(t, err)
		return i
	}

	t.Run("success settles", func(t *testing.T) {
		i := newIntent(t)
		require.NoError(t, i.Settle(payment.OutcomeSuccess, "txn_123", settledAt))

		assert.Equal(t, payment.StatusSuccess, i.Status())
		assert.True(t, i.Succeeded())
		require.NotNil(t, i.ExternalTxnRef())
		assert.Equal(t, "txn_123", *i.ExternalTxnRef())
		require.NotNil(t, i.SettledAt())
		assert.Equal(t, settledAt, *i.SettledAt())
	})

	t.Run("failure settles", func(t *testing.T) {
		i := newIntent(t)
		require.NoError(t, i.Settle(payment.OutcomeFailure, "txn_456", settledAt))

		assert.Equal(t, payment.StatusFailed, i.Status())
		assert.False(t, i.Succeeded())
	})

	t.Run("settling twice is rejected", func(t *testing.T) {
		i := newIntent(t)
		require.NoError(t, i.Settle(payment.OutcomeSuccess, "txn_123", settledAt))

		err := i.Settle(payment.OutcomeSuccess, "txn_999", settledAt.Add(time.Minute))
		assert.ErrorIs(t, err, payment.ErrAlreadySettled)
		assert.Equal(t, "txn_123", *i.ExternalTxnRef())
	})

	t.Run("failure then success is rejected", func(t *testing.T) {
		i := newIntent(t)
		require.NoError(t, i.Settle(payment.OutcomeFailure, "txn_123", settledAt))
		assert.ErrorIs(t, i.Settle(payment.OutcomeSuccess, "txn_999", settledAt), payment.ErrAlreadySettled)
	})
}

func TestNewOutcome(t *testing.T) {
	outcome, err := payment.NewOutcome("success")
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomeSuccess, outcome)

	outcome, err = payment.NewOutcome("failure")
	require.NoError(t, err)
	assert.Equal(t, payment.OutcomeFailure, outcome)

	_, err = payment.NewOutcome("declined")
	assert.ErrorIs(t, err, payment.ErrInvalidOutcome)
}

func TestIsHoldAmount(t *testing.T) {
	cases := []struct {
		name   string
		amount int64
		total  int64
		isHold bool
	}{
		{"exactly ten percent", 36750, 367500, true},
		{"one cent above", 36751, 367500, true},
		{"one cent below", 36749, 367500, true},
		{"two cents above", 36752, 367500, false},
		{"two cents below", 36748, 367500, false},
		{"full amount", 367500, 367500, false},
		{"zero total", 100, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.isHold, payment.IsHoldAmount(c.amount, c.total))
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewPaymentIntentBuilder().With(c.mutate).BuildDomain()

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
