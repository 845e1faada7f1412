package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rs/zerolog"
)

type ownerContextKey struct {
	name string
}

var ownerCtxKey = &ownerContextKey{"owner"}

var ErrNoSecret = errors.New("no jwt secret configured")

func NewTokenAuth(secret string) (*jwtauth.JWTAuth, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}

	return jwtauth.New("HS256", []byte(secret), nil), nil
}

// NewAuthenticator returns a middleware that only lets requests with a valid
// HS256 signed bearer token through. The subject of the token is stored in
// the request context as the owner id.
func NewAuthenticator(ctx context.Context, logger zerolog.Logger, secret string) (func(http.Handler) http.Handler, error) {
	tokenAuth, err := NewTokenAuth(secret)
	if err != nil {
		return nil, err
	}

	verifier := jwtauth.Verifier(tokenAuth)

	return func(next http.Handler) http.Handler {
		return verifier(jwtauth.Authenticator(requireOwner(logger, next)))
	}, nil
}

func requireOwner(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		owner, ok := claims["sub"].(string)
		if !ok || owner == "" {
			logger.Info().Msg("token has no subject")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), owner)))
	})
}

func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerCtxKey, ownerID)
}

func GetOwnerFromContext(ctx context.Context) string {
	owner, ok := ctx.Value(ownerCtxKey).(string)
	if !ok {
		return ""
	}
	return owner
}
