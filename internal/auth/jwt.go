package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the structure of the JWT payload for an operator
// session. The caller's role is deliberately absent: authorization is
// resolved from the profile store on every request so that a demoted
// operator loses access without waiting for token expiry.
type Claims struct {
	Ext    map[string]string `json:"ext"`
	UserID string            `json:"userId"`
	Email  string            `json:"email"`
	jwt.RegisteredClaims
}

type GenerateJwtOpts struct {
	Audience string
	Email    string
	Ext      map[string]string
	Id       string
	Issuer   string
	Secret   string
	Subject  string
	Ttl      time.Duration
	UserId   string
}

// GenerateJwt creates a signed session token for an operator.
func GenerateJwt(opts GenerateJwtOpts) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: opts.UserId,
		Email:  opts.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{opts.Audience},
			ID:        opts.Id,
			Issuer:    opts.Issuer,
			Subject:   opts.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(opts.Ttl)),
		},
	}
	if len(opts.Ext) > 0 {
		claims.Ext = map[string]string{}
		for key, value := range opts.Ext {
			claims.Ext[key] = value
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(opts.Secret))
}

// ValidateJwt verifies the token's signature and expiry and returns
// the Claims when valid.
func ValidateJwt(jwtSecret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("failed to validate token signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token claims: %s", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("failed to validate token claims structure")
	}

	if claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("failed to validate token expiry")
	}

	return claims, nil
}
