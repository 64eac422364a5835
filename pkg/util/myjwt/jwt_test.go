package myjwt

import (
	"testing"
	"time"

	"NoteLink/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "unit-test-key"

func setupJwtConfig(t *testing.T) {
	t.Helper()
	conf := config.GetConfig()
	conf.JwtConfig.Key = testKey
	conf.JwtConfig.ExpireHours = 1
	conf.JwtConfig.Issuer = "NoteLink"
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJwtConfig(t)

	token, err := GenerateToken("uuid-1", "alice", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", claims.Uuid)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "NoteLink", claims.Issuer)
}

func TestParseToken_Missing(t *testing.T) {
	setupJwtConfig(t)

	_, err := ParseToken("")
	require.ErrorIs(t, err, ErrMissingToken)
	assert.Equal(t, ReasonMissingToken, Reason(err))
}

func TestParseToken_Expired(t *testing.T) {
	setupJwtConfig(t)

	// 直接签发一个已过期的凭证
	claims := CustomClaims{
		Uuid: "uuid-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.ErrorIs(t, err, ErrTokenExpired)
	assert.Equal(t, ReasonTokenExpired, Reason(err))
}

func TestParseToken_Malformed(t *testing.T) {
	setupJwtConfig(t)

	_, err := ParseToken("not-a-token")
	require.ErrorIs(t, err, ErrMalformedToken)
	assert.Equal(t, ReasonMalformedToken, Reason(err))
}

func TestParseToken_WrongKey(t *testing.T) {
	setupJwtConfig(t)

	claims := CustomClaims{
		Uuid: "uuid-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-key"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.ErrorIs(t, err, ErrMalformedToken)
}

func TestParseToken_WrongSigningMethod(t *testing.T) {
	setupJwtConfig(t)

	// alg: none 必须被拒绝
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{Uuid: "uuid-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.ErrorIs(t, err, ErrMalformedToken)
}
