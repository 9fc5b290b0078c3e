package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret")

	token, err := m.GenerateAccessToken(42, "alice")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestGenerateAccessToken_Expiry24h(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret")

	before := time.Now()
	token, err := m.GenerateAccessToken(1, "alice")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)

	lifetime := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	assert.Equal(t, AccessTokenExpiry, lifetime)
	assert.WithinDuration(t, before.Add(AccessTokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret")

	// Hand-craft a token from the same secret with an expiry in the past.
	expired := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = m.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewManager("right-secret").GenerateAccessToken(1, "alice")
	require.NoError(t, err)

	_, err = NewManager("wrong-secret").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret")

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, err := m.ValidateToken(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestValidateToken_RejectsUnexpectedSigningMethod(t *testing.T) {
	t.Parallel()

	// alg=none tokens must never validate.
	unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{UserID: 1, Username: "alice"})
	tokenString, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("super-secret").ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
