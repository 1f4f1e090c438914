//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 2, 15, 4, 5, 123456000, time.UTC)
	id := uuid.New()

	cursor := queries.EncodeAfterCursor(at, id)
	gotAt, gotID, err := queries.DecodeAfterCursor(cursor)
	require.NoError(t, err)

	assert.Equal(t, at.UnixMicro(), gotAt.UnixMicro())
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursorErrors(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "wrong version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.NewString()))},
		{name: "missing separator", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123456"))},
		{name: "bad timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{name: "bad uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, int32(queries.DefaultListLimit), queries.ClampLimit(0))
	assert.Equal(t, int32(queries.DefaultListLimit), queries.ClampLimit(-5))
	assert.Equal(t, int32(25), queries.ClampLimit(25))
	assert.Equal(t, int32(queries.MaxListLimit), queries.ClampLimit(queries.MaxListLimit))
	assert.Equal(t, int32(queries.MaxListLimit), queries.ClampLimit(10000))
}
