package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "lifebank/pkg/domain-errors"
)

func TestIssueAndValidate(t *testing.T) {
	svc := NewTokenService("test-signing-key", time.Hour)

	token, err := svc.Issue("HOSP_GENERAL")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "HOSP_GENERAL", claims.CallerID)
}

func TestIssueEmptyCaller(t *testing.T) {
	svc := NewTokenService("test-signing-key", time.Hour)

	_, err := svc.Issue("")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeInvalidInput, dErrors.CodeOf(err))
}

func TestValidateRejectsWrongKey(t *testing.T) {
	issuer := NewTokenService("key-one", time.Hour)
	verifier := NewTokenService("key-two", time.Hour)

	token, err := issuer.Issue("BANK_CENTRAL")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewTokenService("test-signing-key", -time.Minute)

	token, err := svc.Issue("BANK_CENTRAL")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-signing-key", time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}
