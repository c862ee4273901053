package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("64f1c0ffee", "agent@example.com", "member")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee", claims.UserID)
	assert.Equal(t, "agent@example.com", claims.Email)
	assert.Equal(t, "member", claims.Roles)
	assert.Equal(t, "64f1c0ffee", claims.Subject)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken("id", "a@b.c", "admin")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestSetSecretChangesSigningKey(t *testing.T) {
	SetSecret("first-key")
	token, err := GenerateToken("id", "a@b.c", "member")
	require.NoError(t, err)

	SetSecret("second-key")
	_, err = ValidateToken(token)
	assert.Error(t, err)

	// sonraki testler için sıfırla
	configuredSecret = nil
}
