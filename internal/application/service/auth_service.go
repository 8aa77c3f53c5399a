package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/oddbill/billing-api/pkg/apperror"
	"github.com/oddbill/billing-api/pkg/utils"
)

// AuthService implements the single-operator login: one shared password,
// checked against a configured bcrypt hash, buys a session token.
type AuthService struct {
	passwordHash []byte
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(passwordHash string, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		passwordHash: []byte(passwordHash),
		jwtManager:   jwtManager,
	}
}

// Login verifies the password and returns a session token. A wrong password
// reports as 401; nothing else about the failure is disclosed.
func (s *AuthService) Login(password string) (string, error) {
	if len(s.passwordHash) == 0 {
		return "", apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", apperror.ErrInvalidCredentials
	}
	return s.jwtManager.GenerateToken()
}
