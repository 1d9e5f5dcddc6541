package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign(42, "admin", DefaultTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseExpiredToken(t *testing.T) {
	token, err := Sign(1, "user", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParseTamperedToken(t *testing.T) {
	token, err := Sign(1, "user", DefaultTTL)
	require.NoError(t, err)

	_, err = Parse(token + "x")
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("not.a.token")
	assert.Error(t, err)
}

func TestSetSecretIgnoresEmpty(t *testing.T) {
	token, err := Sign(7, "user", DefaultTTL)
	require.NoError(t, err)

	SetSecret("")
	_, err = Parse(token)
	assert.NoError(t, err, "an empty secret keeps the current one")
}
