//go:build unit

package booking_test

import (
	"testing"

	"stayhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateRefund(t *testing.T) {
	paid := booking.NewMoney(10000)

	cases := []struct {
		name        string
		policy      booking.PolicyKind
		hours       float64
		wantRefund  int64
		wantPenalty int64
	}{
		{"flexible well before check-in", booking.PolicyFlexible, 48, 10000, 0},
		{"flexible inside 24h", booking.PolicyFlexible, 23, 0, 10000},
		{"flexible exactly 24h is no refund", booking.PolicyFlexible, 24, 0, 10000},
		{"moderate beyond 120h", booking.PolicyModerate, 121, 10000, 0},
		{"moderate between 24h and 120h", booking.PolicyModerate, 72, 5000, 5000},
		{"moderate exactly 120h falls to half", booking.PolicyModerate, 120, 5000, 5000},
		{"moderate inside 24h", booking.PolicyModerate, 10, 0, 10000},
		{"strict beyond a week", booking.PolicyStrict, 169, 5000, 5000},
		{"strict inside a week", booking.PolicyStrict, 100, 0, 10000},
		{"non-refundable never refunds", booking.PolicyNonRefundable, 1000, 0, 10000},
		{"after check-in has started", booking.PolicyFlexible, -5, 0, 10000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.EvaluateRefund(tc.policy, tc.hours, paid)

			assert.Equal(t, tc.wantRefund, got.Refund.Cents())
			assert.Equal(t, tc.wantPenalty, got.Penalty.Cents())
			assert.Equal(t, paid.Cents(), got.Refund.Add(got.Penalty).Cents(),
				"refund and penalty must reconcile to the amount paid")
		})
	}

	t.Run("nothing paid means nothing to refund", func(t *testing.T) {
		got := booking.EvaluateRefund(booking.PolicyFlexible, 100, booking.Money{})
		assert.True(t, got.Refund.IsZero())
		assert.True(t, got.Penalty.IsZero())
	})

	t.Run("half refund rounds half-up", func(t *testing.T) {
		got := booking.EvaluateRefund(booking.PolicyModerate, 72, booking.NewMoney(10001))
		assert.Equal(t, int64(5001), got.Refund.Cents())
		assert.Equal(t, int64(5000), got.Penalty.Cents())
	})
}
