package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema-ebooking/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAdminKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name    string
		keyHash string
		key     string
		status  int
	}{
		{"valid key", string(hash), "s3cret", http.StatusOK},
		{"missing key", string(hash), "", http.StatusUnauthorized},
		{"wrong key", string(hash), "guess", http.StatusForbidden},
		{"admin disabled", "", "s3cret", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AdminKey(tt.keyHash, zap.NewNop())(http.HandlerFunc(okHandler))

			req := httptest.NewRequest(http.MethodPut, "/api/admin/prices", nil)
			if tt.key != "" {
				req.Header.Set(AdminKeyHeader, tt.key)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestCustomerIdentity(t *testing.T) {
	var got utils.CustomerIdentity
	var found bool
	capture := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = utils.GetCustomerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := CustomerIdentity(testSecret, zap.NewNop())(capture)

	t.Run("No token passes through", func(t *testing.T) {
		found = false
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bookings", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, found)
	})

	t.Run("Valid token sets identity", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"name":  "Jo",
			"email": "jo@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.True(t, found)
		assert.Equal(t, utils.CustomerIdentity{Name: "Jo", Email: "jo@example.com"}, got)
	})

	rejected := []struct {
		name   string
		header string
	}{
		{"malformed header", "Token abc"},
		{"wrong secret", "Bearer " + mustSign(jwt.MapClaims{"email": "jo@example.com"}, "other-secret")},
		{"expired", "Bearer " + mustSign(jwt.MapClaims{"email": "jo@example.com", "exp": time.Now().Add(-time.Hour).Unix()}, testSecret)},
		{"no email claim", "Bearer " + mustSign(jwt.MapClaims{"name": "Jo"}, testSecret)},
	}
	for _, tt := range rejected {
		t.Run("Rejects "+tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
			req.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func mustSign(claims jwt.MapClaims, secret string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return token
}
