//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"stayhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("category sentinel")

	t.Run("nil cause returns the sentinel", func(t *testing.T) {
		assert.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
	})

	t.Run("sentinel and cause both stay in the chain", func(t *testing.T) {
		cause := errors.New("unsupported cursor version")
		err := errs.Mark(cause, sentinel)

		require.ErrorIs(t, err, sentinel)
		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "unsupported cursor version")
	})
}
