package http

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"policy-panic/internal/domain"
)

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuth trades the booth PIN for a short-lived bearer token. There are no
// accounts; the PIN and signing secret come from the environment.
type AdminAuth struct {
	pin    string
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAdminAuth(pin, secret string, ttl time.Duration) *AdminAuth {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &AdminAuth{
		pin:    pin,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Enabled reports whether the admin surface is configured at all.
func (a *AdminAuth) Enabled() bool {
	return a.pin != "" && len(a.secret) > 0
}

// Login verifies the PIN and mints a token.
func (a *AdminAuth) Login(pin string) (string, error) {
	if !a.Enabled() {
		return "", domain.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(pin), []byte(a.pin)) != 1 {
		return "", domain.ErrUnauthorized
	}
	now := a.now()
	claims := adminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Verify checks an Authorization header value for a valid admin token.
func (a *AdminAuth) Verify(header string) error {
	if !a.Enabled() {
		return domain.ErrUnauthorized
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return domain.ErrUnauthorized
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	t, err := jwt.ParseWithClaims(raw, &adminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return errors.Join(domain.ErrUnauthorized, err)
	}
	claims, ok := t.Claims.(*adminClaims)
	if !ok || !t.Valid || claims.Role != "admin" {
		return domain.ErrUnauthorized
	}
	return nil
}
