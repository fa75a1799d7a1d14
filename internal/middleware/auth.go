package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

type authCtxKey int

const adminKey authCtxKey = 1

type adminClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// AdminAuth signs and verifies the admin session token issued after a
// successful password check.
type AdminAuth struct {
	secret []byte
}

func NewAdminAuth(secret string) *AdminAuth {
	return &AdminAuth{secret: []byte(secret)}
}

func (a *AdminAuth) SignToken(ttl time.Duration) (string, error) {
	now := time.Now()
	claims := adminClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

func (a *AdminAuth) parseToken(tok string) (*adminClaims, error) {
	t, err := jwt.ParseWithClaims(tok, &adminClaims{}, func(token *jwt.Token) (interface{}, error) { return a.secret, nil })
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*adminClaims); ok && t.Valid && c.Admin {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// WithAuth marks the request context as an admin session when a valid Bearer
// token is present. Endpoints stay open either way; the flag feeds the audit
// log on destructive operations.
func (a *AdminAuth) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			if _, err := a.parseToken(tok); err == nil {
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminKey, true)))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// IsAdmin reports whether the request carried a valid admin session token.
func IsAdmin(ctx context.Context) bool {
	ok, _ := ctx.Value(adminKey).(bool)
	return ok
}
