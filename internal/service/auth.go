package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stockpile/backend/internal/config"
	"github.com/stockpile/backend/internal/model"
	"github.com/stockpile/backend/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 8
	maxPasswordLength = 128
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenMalformed     = errors.New("token malformed")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrMisconfigured      = errors.New("auth config invalid")
)

type AuthService struct {
	accounts  store.Accounts
	jwtSecret []byte
	accessTTL time.Duration

	// now is swapped out in tests to pin the clock at the expiry boundary.
	now func() time.Time
}

func NewAuthService(accounts store.Accounts, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	accessTTL, err := time.ParseDuration(cfg.JWTAccessTTL)
	if err != nil || accessTTL <= 0 {
		return nil, fmt.Errorf("%w: invalid JWT_ACCESS_TTL", ErrMisconfigured)
	}

	return &AuthService{
		accounts:  accounts,
		jwtSecret: []byte(cfg.JWTSecret),
		accessTTL: accessTTL,
		now:       time.Now,
	}, nil
}

// Register creates an account and returns its public view. The plaintext
// password is bcrypt-hashed before it reaches the store.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.Account, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.accounts.Create(ctx, &model.User{
		Username:     req.Username,
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: string(hash),
		Disabled:     false,
		CreatedAt:    s.now(),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	account := publicAccount(user)
	return &account, nil
}

// Login verifies the credentials and issues an access token. Unknown
// username and wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, int64, error) {
	user, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return "", 0, ErrInvalidCredentials
		}
		return "", 0, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	return s.issueToken(user.Username)
}

// Authenticate validates a presented access token and resolves it to the
// public account view. Expired and malformed tokens fail with distinct
// errors; a token whose subject no longer resolves to an account is treated
// as a credentials failure.
func (s *AuthService) Authenticate(ctx context.Context, tokenStr string) (*model.Account, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrTokenMalformed
	}

	user, err := s.accounts.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Disabled {
		return nil, ErrAccountDisabled
	}

	account := publicAccount(user)
	return &account, nil
}

func (s *AuthService) issueToken(username string) (string, int64, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		ID:        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, err
	}

	return signed, int64(s.accessTTL.Seconds()), nil
}

func validateRegistration(req model.RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return ErrInvalidInput
	}
	if len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength {
		return ErrInvalidInput
	}
	if !strings.Contains(req.Email, "@") {
		return ErrInvalidInput
	}
	return nil
}

func publicAccount(user *model.User) model.Account {
	return model.Account{
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Disabled:    user.Disabled,
	}
}
