//go:build unit

package guest_test

import (
	"testing"

	"stayhub/internal/domain/guest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		g, err := guest.NewGuest("  Maria Santos ", " +15550001111 ", " maria@example.com ", " P1234 ")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, g.ID())
		assert.Equal(t, "Maria Santos", g.FullName())
		assert.Equal(t, "+15550001111", g.Phone())
		assert.Equal(t, "maria@example.com", g.Email())
		assert.Equal(t, "P1234", g.IDNumber())
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := guest.NewGuest("  ", "+15550001111", "", "")
		assert.ErrorIs(t, err, guest.ErrInvalidName)
	})

	t.Run("phone is required", func(t *testing.T) {
		_, err := guest.NewGuest("Maria Santos", "", "", "")
		assert.ErrorIs(t, err, guest.ErrInvalidPhone)
	})

	t.Run("email and id number are optional", func(t *testing.T) {
		_, err := guest.NewGuest("Maria Santos", "+15550001111", "", "")
		assert.NoError(t, err)
	})
}
