// Package auth inspects the access tokens the console presents to the award
// service. Tokens are verified by the service; the console only reads their
// claims to fail fast on an expired token.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/awardkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the standard claims plus the operator login.
type Claims struct {
	jwt.RegisteredClaims
	Login string `json:"login,omitempty"`
}

// Info is what the console knows about its token.
type Info struct {
	Login     string
	ExpiresAt time.Time // zero when the token does not expire
}

// GenerateToken issues an HS256 token. Used by tests and local tooling.
func GenerateToken(login string, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   login,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		Login: login,
	})
	return token.SignedString(secretKey)
}

// Inspect reads the claims of a JWT without checking its signature.
func Inspect(token string) (Info, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Info{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	info := Info{Login: claims.Login}
	if info.Login == "" {
		info.Login = claims.Subject
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// CheckExpiry returns common.ErrTokenExpired when token is a JWT whose
// expiry is before now. Tokens that are not JWTs are left to the server.
func CheckExpiry(token string, now time.Time) error {
	if token == "" {
		return nil
	}
	info, err := Inspect(token)
	if errors.Is(err, common.ErrInvalidToken) {
		return nil
	}
	if !info.ExpiresAt.IsZero() && !now.Before(info.ExpiresAt) {
		return common.ErrTokenExpired
	}
	return nil
}
