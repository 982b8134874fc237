package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"heating_advisor/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = time.Hour

// Domain errors for auth flows. ErrSignUpClosed means a maintainer already
// exists, so new accounts must be created by one of them.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
	ErrSignUpClosed    = errors.New("sign-up requires a maintainer token")
	ErrMaintainerStore = errors.New("maintainer store unavailable")
)

// AuthService manages catalog maintainers: the accounts allowed to replace
// or reload the device catalog and read its audit log. Advice endpoints
// never need an account.
//
// The first maintainer is created anonymously through Bootstrap; every
// later one is added by an authenticated maintainer through SignUp.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
	tokenTTL   time.Duration

	// serializes the empty-table check with the insert in Bootstrap
	bootstrapMu sync.Mutex
}

func NewAuthService(repo repository.Authorization, signingKey string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{authRepo: repo, signingKey: []byte(signingKey), tokenTTL: tokenTTL}
}

// Bootstrap creates the first maintainer. Once any maintainer exists it
// returns ErrSignUpClosed without touching the store.
func (s *AuthService) Bootstrap(username, password string) (int, error) {
	s.bootstrapMu.Lock()
	defer s.bootstrapMu.Unlock()

	n, err := s.authRepo.Count()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMaintainerStore, err)
	}
	if n > 0 {
		return 0, ErrSignUpClosed
	}
	return s.SignUp(username, password)
}

// SignUp adds a maintainer. Callers gate it behind an existing
// maintainer's token.
func (s *AuthService) SignUp(username, password string) (int, error) {
	if strings.TrimSpace(username) == "" {
		return 0, errors.New("username is empty")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	return s.authRepo.Create(username, hash)
}

// Claims identifies the maintainer a token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	MaintainerID int `json:"maintainer_id"`
}

// GenerateToken checks a maintainer's credentials and issues a token valid
// for the configured TTL.
func (s *AuthService) GenerateToken(username, password string) (string, error) {
	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(u.ID)
}

// ParseToken returns the maintainer id. Only HMAC tokens signed with our
// key are accepted.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.MaintainerID, nil
}

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) issueToken(maintainerID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		MaintainerID: maintainerID,
	})
	return token.SignedString(s.signingKey)
}
