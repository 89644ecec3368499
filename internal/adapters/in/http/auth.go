package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fixxo/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// riderIDContextKey is the echo context key the rider middleware stores the
// authenticated rider's id under.
const riderIDContextKey = "riderID"

// adminPrincipalHeader names the header admin requests identify with.
const adminPrincipalHeader = "X-Admin-Principal"

const tokenLifetime = 12 * time.Hour

// ErrInvalidCredentials is returned when a login or bearer token does not
// check out. The message is deliberately uniform for unknown usernames and
// wrong tokens.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenIssuer mints and verifies the signed bearer tokens carried by rider
// portal requests. Tokens are HS256 with the rider id as subject.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer creates a TokenIssuer signing with the given secret.
func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue signs a token for the rider.
func (t *TokenIssuer) Issue(riderID kernel.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   riderID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses a signed token and returns the rider id it was issued for.
func (t *TokenIssuer) Verify(tokenString string) (kernel.UUID, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return t.secret, nil
		},
	)
	if err != nil || !parsed.Valid {
		return kernel.UUID{}, ErrInvalidCredentials
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return kernel.UUID{}, ErrInvalidCredentials
	}

	riderID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, ErrInvalidCredentials
	}
	return riderID, nil
}

// AdminGuard authorizes admin routes against a configured principal
// allow-list. Requests identify with the X-Admin-Principal header.
type AdminGuard struct {
	allowed map[string]struct{}
}

// NewAdminGuard creates a guard from a list of allowed principal ids.
func NewAdminGuard(principals []string) *AdminGuard {
	allowed := make(map[string]struct{}, len(principals))
	for _, p := range principals {
		p = strings.TrimSpace(p)
		if p != "" {
			allowed[p] = struct{}{}
		}
	}
	return &AdminGuard{allowed: allowed}
}

// Middleware rejects requests whose principal is missing or not on the
// allow-list.
func (g *AdminGuard) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		principal := ctx.Request().Header.Get(adminPrincipalHeader)
		if principal == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Missing admin principal",
			})
		}
		if _, ok := g.allowed[principal]; !ok {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "Principal is not an operator",
			})
		}
		return next(ctx)
	}
}

// RiderAuth authenticates rider routes with a bearer token and stores the
// rider id on the request context.
type RiderAuth struct {
	tokens *TokenIssuer
}

// NewRiderAuth creates the rider bearer-token middleware.
func NewRiderAuth(tokens *TokenIssuer) *RiderAuth {
	return &RiderAuth{tokens: tokens}
}

// Middleware verifies the Authorization header and sets the rider id.
func (a *RiderAuth) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		riderID, err := a.tokens.Verify(tokenString)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid bearer token",
			})
		}

		ctx.Set(riderIDContextKey, riderID)
		return next(ctx)
	}
}

// riderIDFromContext returns the rider id the auth middleware stored.
func riderIDFromContext(ctx echo.Context) (kernel.UUID, bool) {
	riderID, ok := ctx.Get(riderIDContextKey).(kernel.UUID)
	return riderID, ok
}
