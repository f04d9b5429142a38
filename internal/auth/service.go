package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/niaone/backend/internal/models"
	"github.com/niaone/backend/internal/store"
)

// ErrInvalidCredentials is returned when no account matches the employee
// code and PIN pair. Callers get no hint about which half failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Accounts is the credential source for authentication.
type Accounts interface {
	GetAccountByEmployeeID(code string) (*models.Account, error)
}

type Service interface {
	Authenticate(ctx context.Context, employeeID, pin string) (*models.Account, string, error)
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

type service struct {
	accounts Accounts
	secret   []byte
}

func NewService(accounts Accounts) *service {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "niaone-dev-secret"
	}
	return &service{accounts: accounts, secret: []byte(secret)}
}

var _ Service = (*service)(nil)

type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Authenticate matches the employee code exactly (case-sensitive) and
// verifies the PIN against the stored bcrypt hash. On success it returns
// the account and a signed session token.
func (s *service) Authenticate(ctx context.Context, employeeID, pin string) (*models.Account, string, error) {
	acc, err := s.accounts.GetAccountByEmployeeID(employeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PINHash), []byte(pin)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.issueToken(acc.ID, acc.Role)
	if err != nil {
		return nil, "", err
	}
	return acc, token, nil
}

func (s *service) issueToken(accountID uuid.UUID, role string) (string, error) {
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role: role,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return tok.SignedString(s.secret)
}

// ValidateToken parses a session token and returns the account ID and role.
func (s *service) ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	tok, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, "", err
	}
	c, ok := tok.Claims.(*claims)
	if !ok || !tok.Valid {
		return uuid.Nil, "", errors.New("invalid token")
	}
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, "", err
	}
	return id, c.Role, nil
}
