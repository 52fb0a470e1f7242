package jwt

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetSessionID(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "session-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)

	sid, err := j.GetSessionID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "session-1", sid)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, "session-1")
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	sid, err := j.GetSessionID(ctx, token)
	assert.Error(t, err)
	assert.Empty(t, sid)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	sid, err := j.GetSessionID(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Empty(t, sid)
}

func TestJWT_MissingSessionID(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	token, err := j.Generate(ctx, "")
	require.NoError(t, err)

	_, err = j.GetSessionID(ctx, token)
	assert.ErrorIs(t, err, errNoSessionID)
}

func TestJWT_RejectsOtherSigningMethods(t *testing.T) {
	j := New(WithSecretKey("secret"))

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{SessionID: "s"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.GetSessionID(context.Background(), token)
	assert.Error(t, err)
}

func TestJWT_GetSessionID_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, "session-1")
	assert.NoError(t, err)

	_, err = j2.GetSessionID(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		cookie        string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"Cookie", "cookietoken", "", "cookietoken", false},
		{"CookieWinsOverHeader", "cookietoken", "Bearer headertoken", "cookietoken", false},
		{"ValidBearer", "", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", "", true},
		{"InvalidFormat", "", "Token mytoken123", "", true},
		{"TooManyParts", "", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestJWT_Cookies(t *testing.T) {
	j := New(WithExpiration(time.Hour))

	t.Run("set over plain http", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		rr := httptest.NewRecorder()

		j.SetCookie(rr, req, "tok")

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, CookieName, c.Name)
		assert.Equal(t, "tok", c.Value)
		assert.Equal(t, 3600, c.MaxAge)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("secure behind tls proxy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.Header.Set("X-Forwarded-Proto", "https")
		rr := httptest.NewRecorder()

		j.SetCookie(rr, req, "tok")

		assert.True(t, rr.Result().Cookies()[0].Secure)
	})

	t.Run("secure over tls", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.TLS = &tls.ConnectionState{}
		assert.True(t, isSecureRequest(req))
	})

	t.Run("clear", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		rr := httptest.NewRecorder()

		j.ClearCookie(rr, req)

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "", cookies[0].Value)
		assert.True(t, cookies[0].MaxAge < 0)
	})
}
