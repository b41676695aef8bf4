package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/fredneedsausername/GateKeeper/internal/repository/db"
)

const tokenLifetime = 365 * 24 * time.Hour

// AuthService issues operator API tokens. Passwords are stored as bcrypt
// hashes; a login matches on (username, hash) and nothing less.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	querier db.Querier
	secret  []byte
}

func NewAuthService(q db.Querier, jwtSecret string) AuthService {
	return &authService{querier: q, secret: []byte(jwtSecret)}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password required", ErrInvalidInput)
	}

	user, err := s.querier.GetUserByUsername(ctx, username)
	if err != nil {
		// Unknown user and wrong password are indistinguishable on purpose.
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(tokenLifetime).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// HashPassword is the one sanctioned way to produce a users.password_hash
// value, used by provisioning tooling.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
