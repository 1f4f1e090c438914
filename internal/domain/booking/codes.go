package booking

import (
	"crypto/rand"
)

// Unambiguous alphabet for guest-facing codes: no 0/O, 1/I/L.
const codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const (
	bookingCodePrefix = "BK-"
	codeLength        = 8
)

func randomCode(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; nothing
		// sensible to fall back to.
		panic("booking: crypto/rand unavailable: " + err.Error())
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(out)
}

// NewBookingCode returns the staff-facing human-readable code.
func NewBookingCode() string {
	return bookingCodePrefix + randomCode(codeLength)
}

// NewConfirmationCode returns the guest-facing confirmation code.
// Uniqueness is enforced by the store's unique index.
func NewConfirmationCode() string {
	return randomCode(codeLength)
}
