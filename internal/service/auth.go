package service

import (
	"context"
	"fmt"

	"github.com/castela0119/Elice-Team5/internal/domain"
	"github.com/castela0119/Elice-Team5/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = fmt.Errorf("username already taken")

// AuthService handles user registration and token resolution.
type AuthService struct {
	userRepo *repository.UserRepository
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a user account and issues its API token.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - username, email, password: account fields; password is bcrypt-hashed.
// Returns:
//   - *domain.User: created account including its token.
//   - error: ErrUsernameTaken on a duplicate username, otherwise the
//     hash or persistence error.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	taken, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Token:        uuid.New().String(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate resolves an API token to its user.
// Returns domain.ErrNotFound for an unknown token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	return s.userRepo.GetByToken(ctx, token)
}
