package auth

import (
	"net/http"
	"strings"

	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
)

var ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")

// StaffAuthenticator checks front-desk credentials against the single
// configured staff account and issues access tokens.
type StaffAuthenticator struct {
	email        string
	passwordHash string
	hasher       PasswordHasher
	jwtManager   *JWTManager
}

func NewStaffAuthenticator(email, passwordHash string, hasher PasswordHasher, jwtManager *JWTManager) *StaffAuthenticator {
	return &StaffAuthenticator{
		email:        normalizeEmail(email),
		passwordHash: passwordHash,
		hasher:       hasher,
		jwtManager:   jwtManager,
	}
}

// Login returns a signed access token when the credentials match.
func (a *StaffAuthenticator) Login(email, password string) (string, error) {
	if normalizeEmail(email) != a.email || password == "" {
		return "", ErrInvalidCredentials
	}
	if err := a.hasher.Compare(a.passwordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return a.jwtManager.GenerateAccessToken(a.email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
