package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_SignAndVerify(t *testing.T) {
	v := NewTokenVerifier("test-secret", "tripdesk")

	p := Principal{UserID: "user-1", Role: RoleAdmin, AgencyID: "agency-1"}
	tokenStr, err := v.Sign(p, time.Hour)
	require.NoError(t, err)

	got, err := v.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestToken_ExpiredTokenRejected(t *testing.T) {
	v := NewTokenVerifier("test-secret", "tripdesk")

	tokenStr, err := v.Sign(Principal{UserID: "user-1", Role: RoleAgent}, -time.Minute)
	require.NoError(t, err)

	_, err = v.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_WrongSecretRejected(t *testing.T) {
	signer := NewTokenVerifier("secret-a", "tripdesk")
	verifier := NewTokenVerifier("secret-b", "tripdesk")

	tokenStr, err := signer.Sign(Principal{UserID: "user-1", Role: RoleAgent}, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_WrongIssuerRejected(t *testing.T) {
	signer := NewTokenVerifier("test-secret", "other-issuer")
	verifier := NewTokenVerifier("test-secret", "tripdesk")

	tokenStr, err := signer.Sign(Principal{UserID: "user-1", Role: RoleAgent}, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestToken_UnknownRoleRejected(t *testing.T) {
	v := NewTokenVerifier("test-secret", "tripdesk")

	tokenStr, err := v.Sign(Principal{UserID: "user-1", Role: "operator"}, time.Hour)
	require.NoError(t, err)

	_, err = v.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrMissingRole)
}

func TestPrincipal_HasRole(t *testing.T) {
	p := Principal{Role: RoleAdmin}

	assert.True(t, p.HasRole(RoleAdmin))
	assert.True(t, p.HasRole(RoleSuperAdmin, RoleAdmin))
	assert.False(t, p.HasRole(RoleAgent))
	assert.False(t, p.IsSuperAdmin())
	assert.True(t, Principal{Role: RoleSuperAdmin}.IsSuperAdmin())
}
