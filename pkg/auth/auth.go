package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/RecipeLab/configs"
	"droscher.com/RecipeLab/pkg/server"
	"droscher.com/RecipeLab/pkg/server/rest"
)

type SubjectKey struct{}

var (
	ErrMissingAuthorization    = errors.New("authorization header not found")
	ErrMalformedAuthorization  = errors.New("authorization format must be Bearer {token}")
	ErrInvalidToken            = errors.New("invalid token")
	errUnexpectedSigningMethod = errors.New("unexpected signing method")
)

type Manager struct {
	conf   *configs.Config
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger}
}

// Middleware requires a bearer token on every request that changes data.
// Reads stay open, and an empty secret key disables the check entirely.
func (a *Manager) Middleware(next http.Handler) http.Handler {
	if a.conf.Auth.SecretKey == "" {
		a.logger.Warn("no auth secret key configured, write routes are unprotected")

		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)

			return
		}

		subject, err := a.authenticate(r.Header)
		if err != nil {
			server.WriteError(w, a.logger, &rest.Error{Status: http.StatusUnauthorized, Message: err.Error()})

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), SubjectKey{}, subject)))
	})
}

func (a *Manager) authenticate(header http.Header) (string, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: %v", errUnexpectedSigningMethod, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	accessToken, err := a.extractTokenFromHeader(header)
	if err != nil {
		return "", err
	}

	token, err := jwt.ParseWithClaims(*accessToken, &jwt.RegisteredClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, found := token.Claims.(*jwt.RegisteredClaims)
	if !found || !token.Valid {
		a.logger.Error("invalid token", zap.Any("claims", claims))

		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Debug("No authorization header found")

		return nil, ErrMissingAuthorization
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, ErrMalformedAuthorization
	}

	return &token, nil
}
