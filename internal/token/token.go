package token

import (
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// TokenExpiry bounds how long an issued session token stays valid. The
// cookie carrying the token may outlive it, callers must re-verify rather
// than trust cookie presence.
const TokenExpiry = 1 * time.Hour

var (
	// ErrInvalidToken means the signature did not verify or the token is
	// structurally malformed.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken means the token verified but its expiry has elapsed.
	ErrExpiredToken = errors.New("expired token")
)

type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// Service issues and verifies signed session tokens carrying a single
// email claim. Tokens are not persisted server-side, a token is valid iff
// its signature verifies and its expiry has not elapsed.
type Service struct {
	signingKey []byte
	now        func() time.Time
}

func NewService(signingKey []byte) *Service {
	return &Service{signingKey: signingKey, now: time.Now}
}

func (s *Service) Issue(email string) (string, error) {
	claims := Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: s.now().Add(TokenExpiry).UTC().Unix(),
			IssuedAt:  s.now().UTC().Unix(),
			Issuer:    "job-hive-server",
		},
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tk.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "unable to sign session token")
	}
	return signed, nil
}

// Verify returns the email claim embedded in tok. The two failure kinds
// are handled identically by callers but kept distinguishable for
// observability.
func (s *Service) Verify(tok string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !parsed.Valid || claims.Email == "" {
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}
