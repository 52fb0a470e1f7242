package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie that carries the signed session token.
const CookieName = "mundo_session"

var (
	errNoToken      = errors.New("session token missing")
	errBadHeader    = errors.New("invalid authorization header format")
	errInvalidToken = errors.New("invalid token")
	errNoSessionID  = errors.New("sid not found in token")
)

// Claims are the claims of a session token. The token only points at a
// server-side session; it carries no identity data of its own.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// JWT signs and verifies session tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token lifetime, equal to the session TTL
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the HMAC secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) {
		j.SecretKey = secret
	}
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) {
		j.Exp = exp
	}
}

// New creates a JWT with a 24h lifetime unless overridden.
func New(opts ...Option) *JWT {
	j := &JWT{
		SecretKey: "mundo-divertido-secret",
		Exp:       24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate signs a token that refers to sessionID.
func (j *JWT) Generate(ctx context.Context, sessionID string) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims verifies the signature and expiry of tokenString.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

// GetSessionID returns the session id a valid token refers to.
func (j *JWT) GetSessionID(ctx context.Context, tokenString string) (string, error) {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return "", err
	}
	if claims.SessionID == "" {
		return "", errNoSessionID
	}
	return claims.SessionID, nil
}

// GetTokenFromRequest reads the token from the session cookie, falling
// back to an "Authorization: Bearer" header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errNoToken
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errBadHeader
	}

	return parts[1], nil
}

// SetCookie writes the session cookie for token.
func (j *JWT) SetCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(j.Exp.Seconds()),
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func (j *JWT) ClearCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// isSecureRequest reports whether the request reached us over HTTPS,
// directly or through a TLS-terminating proxy.
func isSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return r.Header.Get("X-Forwarded-Proto") == "https"
}
