package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pulse/internal/client/session"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("k")
	tok, err := GenerateToken(7, "A", "a@b.com", secret, time.Hour)
	require.NoError(t, err)

	c, err := ParseToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.UserID)
	assert.Equal(t, "a@b.com", c.Email)
}

func TestToken_ReadableByClient(t *testing.T) {
	tok, err := GenerateToken(7, "A", "a@b.com", []byte("k"), time.Hour)
	require.NoError(t, err)

	id, err := session.Validate(tok, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "7", id.UserID())
	assert.Equal(t, "A", id.UserName())
	assert.Equal(t, "a@b.com", id.Email())
}

func TestParseToken_Rejects(t *testing.T) {
	secret := []byte("k")

	expired, err := GenerateToken(1, "A", "a@b.com", secret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, secret)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)

	other, err := GenerateToken(1, "A", "a@b.com", []byte("other"), time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(other, secret)
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseToken("h.p.s", secret)
	require.Error(t, err)
}
