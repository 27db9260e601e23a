package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Norumai01/HonkaiBackendV2/internal/models"
	"github.com/Norumai01/HonkaiBackendV2/internal/repositories"
	"github.com/Norumai01/HonkaiBackendV2/internal/utils"
)

// ---------------------------------------------------------------------
// UserService interface
// ---------------------------------------------------------------------

// UserService resolves login input to a user record and owns
// registration. Login input may be an email or a username; resolution
// tries the email match first, then the username match. That order is
// the fixed tie-break: an input matching both resolves as email.
type UserService interface {
	ResolveLoginInput(ctx context.Context, input string) (*models.User, error)

	// Authenticate resolves the input and verifies the password. Both
	// "no such user" and "wrong password" collapse into
	// ErrInvalidCredentials so callers cannot tell them apart.
	Authenticate(ctx context.Context, input string, password string) (*models.User, error)

	Register(ctx context.Context, username, email, password, bio string) (*models.User, error)

	GetAllUsers(ctx context.Context) ([]*models.User, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ResolveLoginInput(ctx context.Context, input string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, input)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = s.userRepo.GetByUsername(ctx, input)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, input string, password string) (*models.User, error) {
	user, err := s.ResolveLoginInput(ctx, input)
	if err != nil {
		utils.Logger.Warnf("Attempting to authenticate: %s... user not resolved", input)
		return nil, utils.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		utils.Logger.Warnf("Invalid credentials provided for: %s.", input)
		return nil, utils.ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) Register(ctx context.Context, username, email, password, bio string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		Bio:          bio,
	}

	// Uniqueness is enforced by the database; the repository maps
	// constraint violations onto ErrUsernameExists / ErrEmailExists.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	utils.Logger.Infof("Created user for %s.", user.Username)
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}
