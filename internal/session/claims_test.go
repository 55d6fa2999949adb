package session

import (
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestDecodeClaims(t *testing.T) {
	t.Run("subject and email", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "user-1", "email": "a@example.com"})

		claims, ok := DecodeClaims(token)

		require.True(t, ok)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "a@example.com", claims.Email)
	})

	t.Run("subject only", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "user-2"})

		claims, ok := DecodeClaims(token)

		require.True(t, ok)
		assert.Equal(t, "user-2", claims.Subject)
		assert.Empty(t, claims.Email)
	})

	t.Run("signature is never checked", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "user-3"})
		tampered := token[:len(token)-4] + "AAAA"

		_, ok := DecodeClaims(tampered)

		assert.True(t, ok)
	})
}

func TestDecodeClaims_Malformed(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	noSub := base64.RawURLEncoding.EncodeToString([]byte(`{"email":"a@example.com"}`))
	emptySub := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":""}`))

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"single segment", "justastring"},
		{"two segments", header + ".bbb"},
		{"payload not base64url", header + ".%%%.ccc"},
		{"payload not json", header + "." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".ccc"},
		{"missing sub claim", header + "." + noSub + ".ccc"},
		{"empty sub claim", header + "." + emptySub + ".ccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, ok := DecodeClaims(tt.token)
			assert.False(t, ok)
			assert.Empty(t, claims.Subject)
		})
	}
}
