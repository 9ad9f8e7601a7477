package collabauth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spock-lang/spock/internal/collabauth"
)

func TestIssueAndValidateToken(t *testing.T) {
	issuer := collabauth.NewIssuer("test-secret", time.Minute)
	token, err := issuer.IssueToken("key-123")
	require.NoError(t, err)

	keyID, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "key-123", keyID)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	issuer := collabauth.NewIssuer("test-secret", -time.Minute)
	token, err := issuer.IssueToken("key-123")
	require.NoError(t, err)

	_, err = issuer.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := collabauth.NewIssuer("secret-a", time.Minute)
	token, err := issuer.IssueToken("key-123")
	require.NoError(t, err)

	other := collabauth.NewIssuer("secret-b", time.Minute)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestHashAndCheckKey(t *testing.T) {
	hash, err := collabauth.HashKey("sk-live-abc123")
	require.NoError(t, err)
	assert.True(t, collabauth.CheckKey("sk-live-abc123", hash))
	assert.False(t, collabauth.CheckKey("wrong-key", hash))
}

func TestHashKeyRejectsOverlongInput(t *testing.T) {
	_, err := collabauth.HashKey(strings.Repeat("a", 73))
	assert.Error(t, err)
}
