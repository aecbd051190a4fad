package controller

import (
	"context"
	"creditscore/pkg/logger"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionIssuer = "creditscore"

// SessionOptions configures the session cookie.
type SessionOptions struct {
	// CookieName is the name of the session cookie.
	CookieName string
	// Secret is the HMAC key the cookie token is signed with.
	Secret []byte
	// TTL is the cookie lifetime. It is refreshed on every request.
	TTL time.Duration
	// Secure marks the cookie as HTTPS only.
	Secure bool
}

// SessionID returns the session ID set by WithSession, or "".
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)

	return id
}

// ContextWithSessionID stores a session ID in ctx.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionIDKey, id)
}

// SignSession returns a signed token whose subject is id.
func SignSession(opts SessionOptions, id string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(opts.TTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(opts.Secret)
	if err != nil {
		return "", fmt.Errorf("could not sign session token: %w", err)
	}

	return signed, nil
}

// ParseSession validates a session token and returns its subject.
func ParseSession(opts SessionOptions, token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return opts.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("invalid session subject: %w", err)
	}

	return claims.Subject, nil
}

// WithSession resolves the session ID from the signed session cookie, minting a
// new session when the cookie is missing, expired or tampered with. The cookie
// is re-issued on every request so that active sessions slide forward.
func WithSession(opts SessionOptions, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var id string
		if c, err := r.Cookie(opts.CookieName); err == nil {
			id, err = ParseSession(opts, c.Value)
			if err != nil && !errors.Is(err, jwt.ErrTokenExpired) {
				logger.Debug(ctx, "discarding session cookie", zap.Error(err))
			}
		}
		if id == "" {
			id = uuid.NewString()
		}

		now := time.Now()
		token, err := SignSession(opts, id, now)
		if err != nil {
			logger.Error(ctx, "could not issue session cookie", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     opts.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  now.Add(opts.TTL),
			MaxAge:   int(opts.TTL.Seconds()),
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		ctx = ContextWithSessionID(ctx, id)
		ctx = logger.WithFields(ctx, zap.String("session_id", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
