// filepath: internal/services/auth/tokenservice.go
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"navhub/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is returned when the admin password does not match.
var ErrBadCredentials = errors.New("invalid credentials")

// adminClaims defines the claims of an admin session token.
type adminClaims struct {
	jwt.RegisteredClaims
}

// TokenService is the admin session collaborator: it turns the admin
// password into a session token and validates tokens on later requests.
type TokenService interface {
	Authenticate(password string) (string, error)
	Validate(tokenString string) bool
}

var _ TokenService = (*tokenService)(nil)

type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates the admin token service.
func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{cfg: cfg}
}

// Authenticate checks the password against the stored bcrypt hash and, on
// success, returns a signed session token.
func (s *tokenService) Authenticate(password string) (string, error) {
	hash := s.cfg.Auth.AdminPasswordHash
	if hash == "" {
		return "", fmt.Errorf("%w: no admin password configured", ErrBadCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrBadCredentials
	}

	expiry := time.Now().Add(time.Hour * time.Duration(s.cfg.Auth.AccessDurationH))
	claims := &adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			Issuer:    "navhub",
			Subject:   "admin",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate reports whether the token is a live admin session.
func (s *tokenService) Validate(tokenString string) bool {
	token, err := jwt.ParseWithClaims(tokenString, &adminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	return err == nil && token.Valid
}

// GenerateSecret creates a random signing secret for deployments that did
// not configure one.
func GenerateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword bcrypt-hashes a plaintext admin password supplied via
// environment or flag.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
