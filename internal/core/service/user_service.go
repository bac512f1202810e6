package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/bookhaven/catalog-api/internal/core/domain"
	"github.com/bookhaven/catalog-api/internal/core/ports"
)

// UserService implements registration and login against the user
// directory. Passwords are stored and compared as plain strings.
type UserService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewUserService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates a user and assigns the next sequential identifier.
// Duplicate usernames are not rejected.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	user, err := s.users.Add(ctx, username, email, password)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("id", user.ID).
		Str("username", user.Username).
		Str("email", user.Email).
		Msg("user registered")

	return user, nil
}

// Login authenticates and issues a bearer token for the profile endpoint.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*domain.User, string, error) {
	user, err := s.Authenticate(ctx, identifier, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Authenticate matches identifier against username or email and compares
// the password exactly. Both failure modes collapse into ErrAuthFailed.
func (s *UserService) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAuthFailed
		}
		return nil, err
	}
	if user.Password != password {
		return nil, domain.ErrAuthFailed
	}
	return user, nil
}

func (s *UserService) Profile(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

func (s *UserService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
