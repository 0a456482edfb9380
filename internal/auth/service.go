package auth

import (
	"context"
	"errors"
	"time"

	"github.com/Renan-Leal/libraflux/internal/user"
	"github.com/Renan-Leal/libraflux/logger"
)

// ErrInvalidCredentials is returned on login with a wrong email or password
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository is the storage surface the auth service needs
type UserRepository interface {
	Create(ctx context.Context, u user.User) (user.User, error)
	FindByEmail(ctx context.Context, email string) (user.User, error)
}

// Service handles signup, login and the default admin bootstrap
type Service struct {
	users  UserRepository
	secret string
	ttl    time.Duration
	log    *logger.Logger
}

// NewService creates a new auth service
func NewService(users UserRepository, secret string, ttl time.Duration, log *logger.Logger) *Service {
	return &Service{users: users, secret: secret, ttl: ttl, log: log}
}

// Signup registers a new user. An empty role defaults to REGULAR.
func (s *Service) Signup(ctx context.Context, email, name, password, role string) (user.User, error) {
	if role == "" {
		role = user.RoleRegular
	}
	hash, err := HashPassword(password)
	if err != nil {
		return user.User{}, err
	}

	created, err := s.users.Create(ctx, user.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return user.User{}, err
	}

	s.log.Info().Str("email", created.Email).Str("role", created.Role).Msg("User created")
	return created, nil
}

// Login verifies the credentials and issues a JWT
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !VerifyPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return GenerateToken(s.secret, u.Email, u.Role, s.ttl)
}

// EnsureDefaultAdmin creates the ROOT user from the environment-given
// credentials when it does not exist yet. An empty password skips the
// bootstrap entirely.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, email, name, password string) error {
	if password == "" {
		s.log.Warn().Msg("ADMIN_PASSWORD not set, skipping default admin bootstrap")
		return nil
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		s.log.Info().Str("email", email).Msg("Admin user already exists")
		return nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return err
	}

	_, err = s.Signup(ctx, email, name, password, user.RoleRoot)
	return err
}
