package tokenservice

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	s := NewTokenService("test-secret")

	userID := uuid.New()
	token, err := s.Issue(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := s.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyInvalidToken(t *testing.T) {
	s := NewTokenService("test-secret")

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "empty token",
			token: func(t *testing.T) string { return "" },
		},
		{
			name:  "malformed token",
			token: func(t *testing.T) string { return "not.a.jwt" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewTokenService("other-secret")
				token, err := other.Issue(uuid.New())
				assert.NoError(t, err)
				return token
			},
		},
		{
			name: "missing id claim",
			token: func(t *testing.T) string {
				unsigned := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"foo": "bar"})
				token, err := unsigned.SignedString([]byte("test-secret"))
				assert.NoError(t, err)
				return token
			},
		},
		{
			name: "unsigned algorithm",
			token: func(t *testing.T) string {
				unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": uuid.New().String()})
				token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
				assert.NoError(t, err)
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Verify(tt.token(t))
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
