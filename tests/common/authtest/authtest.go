//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken signs a token directly with the test secret. Token issuance is
// owned by the auth service in production, so tests mint their own.
func IssueToken(t *testing.T, cfg config.Config, actorID, tenantID uuid.UUID, role string) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err)

	token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(actorID, tenantID, role)
	require.NoError(t, err, "failed to sign test token")
	return token
}
