package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", 15*time.Minute)

	token, err := m.Generate("user-1", "EMPLOYER")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "EMPLOYER", claims.Role)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", 15*time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := m.Generate("user-1", "JOB_SEEKER")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other", time.Minute)
		token, err := other.Generate("user-1", "JOB_SEEKER")
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		})
		signed, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = m.Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "user-1"})
		signed, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = m.Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
