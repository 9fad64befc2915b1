package handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"relay/pkg/serrors"
)

// operatorKey is the context key type for the authenticated operator subject.
type operatorKey struct{}

// OperatorSubject returns the subject of the JWT that authenticated the
// request, or empty outside an authenticated request.
func OperatorSubject(ctx context.Context) string {
	subject, _ := ctx.Value(operatorKey{}).(string)

	return subject
}

// Auth verifies RS256 bearer tokens on operator endpoints.
type Auth struct {
	publicKey *rsa.PublicKey
}

// NewAuth parses the PEM-encoded RSA public key used to verify tokens.
func NewAuth(publicKeyPEM string) (*Auth, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Auth{publicKey: key}, nil
}

// Authenticate validates the bearer token and returns its subject.
func (a *Auth) Authenticate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return a.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "invalid token")
	}

	return claims.Subject, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// token subject in the request context.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		subject, err := a.Authenticate(token)
		if err != nil {
			respondError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), operatorKey{}, subject)))
	})
}
