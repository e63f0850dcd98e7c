package auth

import (
	"errors"
	"fmt"
	"time"

	"eventboard/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSubject is returned for tokens without a sub claim.
var ErrMissingSubject = errors.New("token has no subject")

type jwtVerifier struct {
	secret   []byte
	issuer   string
	leeway   time.Duration
	validAlg []string
}

// NewJWTVerifier returns a TokenVerifier for HS256 tokens issued by the
// authentication provider. The sub claim is the caller's user id. When issuer
// is non-empty the iss claim must match it.
func NewJWTVerifier(secret, issuer string) domain.TokenVerifier {
	return &jwtVerifier{
		secret:   []byte(secret),
		issuer:   issuer,
		leeway:   30 * time.Second,
		validAlg: []string{jwt.SigningMethodHS256.Alg()},
	}
}

func (v *jwtVerifier) Verify(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(v.validAlg),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("verify token: %w", err)
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
