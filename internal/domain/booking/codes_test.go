//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"stayhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	t.Run("booking code carries the staff-facing prefix", func(t *testing.T) {
		code := booking.NewBookingCode()
		assert.True(t, strings.HasPrefix(code, "BK-"))
		assert.Len(t, code, len("BK-")+8)
	})

	t.Run("confirmation code avoids ambiguous characters", func(t *testing.T) {
		for range 50 {
			code := booking.NewConfirmationCode()
			assert.Len(t, code, 8)
			assert.NotContains(t, code, "0")
			assert.NotContains(t, code, "O")
			assert.NotContains(t, code, "1")
			assert.NotContains(t, code, "I")
			assert.NotContains(t, code, "L")
		}
	})

	t.Run("codes do not repeat", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 100 {
			code := booking.NewConfirmationCode()
			_, dup := seen[code]
			assert.False(t, dup, "duplicate code %s", code)
			seen[code] = struct{}{}
		}
	})
}
