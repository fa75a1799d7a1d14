package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// TokenSigner issues the admin session token handed back after a successful
// password check.
type TokenSigner func(ttl time.Duration) (string, error)

type AdminService struct {
	password     string
	passwordHash string
	signToken    TokenSigner
	tokenTTL     time.Duration
}

// NewAdminService validates against passwordHash (bcrypt) when set, falling
// back to a plain comparison with password.
func NewAdminService(password, passwordHash string, signer TokenSigner) *AdminService {
	return &AdminService{
		password:     password,
		passwordHash: passwordHash,
		signToken:    signer,
		tokenTTL:     12 * time.Hour,
	}
}

// Validate checks the admin password and returns a session token.
func (s *AdminService) Validate(password string) (string, error) {
	if password == "" {
		return "", NewInvalidError("Password is required")
	}
	if s.password == "" && s.passwordHash == "" {
		return "", NewConfigError("Admin password not configured")
	}
	if s.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
			return "", NewUnauthorizedError("Invalid password")
		}
	} else if password != s.password {
		return "", NewUnauthorizedError("Invalid password")
	}
	if s.signToken == nil {
		return "", NewConfigError("token signer not configured")
	}
	token, err := s.signToken(s.tokenTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}
