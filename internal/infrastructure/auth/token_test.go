package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/espocity/league/internal/domain/user"
)

func TestTokenManagerRoundTrip(t *testing.T) {
	t.Parallel()

	manager, err := NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	principal := user.Principal{UserID: "u-1", Username: "alice", Admin: true}
	token, expiresAt, err := manager.Issue(context.Background(), principal)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, expiresAt.After(time.Now()))

	parsed, err := manager.Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, principal, parsed)
}

func TestTokenManagerRejectsExpired(t *testing.T) {
	t.Parallel()

	manager, err := NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	issued := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return issued }

	token, _, err := manager.Issue(context.Background(), user.Principal{UserID: "u-1", Username: "alice"})
	require.NoError(t, err)

	manager.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = manager.Verify(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManagerRejectsTampered(t *testing.T) {
	t.Parallel()

	managerA, err := NewTokenManager("secret-a", time.Hour)
	require.NoError(t, err)
	managerB, err := NewTokenManager("secret-b", time.Hour)
	require.NoError(t, err)

	token, _, err := managerA.Issue(context.Background(), user.Principal{UserID: "u-1"})
	require.NoError(t, err)

	_, err = managerB.Verify(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManagerRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("  ", time.Hour)
	require.Error(t, err)
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcryptTestCost)
	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.NoError(t, hasher.Compare(hash, "s3cret-pass"))
	require.Error(t, hasher.Compare(hash, "wrong-pass"))
}

const bcryptTestCost = 4
