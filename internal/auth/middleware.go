// Package auth extracts the caller principal from a Bearer JWT. The
// pipeline never sees tokens, only the resolved principal.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/wisecache/wisecache/internal/domain"
)

const principalContextKey = "wisecache.principal"

type Config struct {
	Secret string
	Issuer string
}

type Authenticator struct {
	secret []byte
	issuer string
}

// NewAuthenticator fails fast on a missing secret; running without one is a
// setup error, not something to degrade around.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("auth requires a signing secret")
	}

	return &Authenticator{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}, nil
}

type principalClaims struct {
	Email string `json:"email,omitempty"`
	Guest bool   `json:"guest,omitempty"`
	jwt.RegisteredClaims
}

// Middleware validates the Authorization header and stores the principal in
// the request context for handlers to read via PrincipalFrom.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := a.authenticate(c.Request().Header.Get("Authorization"))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

func (a *Authenticator) authenticate(header string) (domain.Principal, error) {
	if header == "" {
		return domain.Principal{}, fmt.Errorf("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return domain.Principal{}, fmt.Errorf("invalid authorization header format")
	}

	claims := &principalClaims{}
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(a.issuer))
	}

	token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, parserOpts...)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return domain.Principal{}, fmt.Errorf("invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("token subject is not a valid id")
	}

	return domain.Principal{
		ID:      id,
		Email:   claims.Email,
		IsGuest: claims.Guest,
	}, nil
}

// PrincipalFrom reads the authenticated principal set by the middleware.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(domain.Principal)
	return principal, ok
}
