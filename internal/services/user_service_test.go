package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Norumai01/HonkaiBackendV2/internal/models"
	"github.com/Norumai01/HonkaiBackendV2/internal/utils"
)

// fakeUserRepo is an in-memory stand-in for the Postgres repository.
type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return utils.ErrUsernameExists
		}
		if u.Email == user.Email {
			return utils.ErrEmailExists
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	return f.users, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestResolveLoginInputByEmail(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice", Email: "alice@x.com"}
	svc := NewUserService(&fakeUserRepo{users: []*models.User{alice}})

	user, err := svc.ResolveLoginInput(context.Background(), "alice@x.com")
	require.NoError(t, err)
	require.Equal(t, alice.ID, user.ID)
}

func TestResolveLoginInputByUsername(t *testing.T) {
	alice := &models.User{ID: uuid.New(), Username: "alice", Email: "alice@x.com"}
	svc := NewUserService(&fakeUserRepo{users: []*models.User{alice}})

	user, err := svc.ResolveLoginInput(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, user.ID)
}

func TestResolveLoginInputEmailTakesPriority(t *testing.T) {
	// One account's email collides with another account's username.
	// The email match must win.
	byEmail := &models.User{ID: uuid.New(), Username: "real-user", Email: "user@example.com"}
	byUsername := &models.User{ID: uuid.New(), Username: "user@example.com", Email: "other@example.com"}
	svc := NewUserService(&fakeUserRepo{users: []*models.User{byUsername, byEmail}})

	user, err := svc.ResolveLoginInput(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.Equal(t, byEmail.ID, user.ID)
}

func TestResolveLoginInputNotFound(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.ResolveLoginInput(context.Background(), "nobody")
	require.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestAuthenticateSuccess(t *testing.T) {
	alice := &models.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: mustHash(t, "correct"),
	}
	svc := NewUserService(&fakeUserRepo{users: []*models.User{alice}})

	user, err := svc.Authenticate(context.Background(), "alice@x.com", "correct")
	require.NoError(t, err)
	require.Equal(t, alice.ID, user.ID)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	alice := &models.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: mustHash(t, "correct"),
	}
	svc := NewUserService(&fakeUserRepo{users: []*models.User{alice}})

	_, wrongPassword := svc.Authenticate(context.Background(), "alice@x.com", "wrong")
	require.ErrorIs(t, wrongPassword, utils.ErrInvalidCredentials)

	_, unknownUser := svc.Authenticate(context.Background(), "mallory@x.com", "correct")
	require.ErrorIs(t, unknownUser, utils.ErrInvalidCredentials)

	require.Equal(t, wrongPassword, unknownUser)
}

func TestRegister(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), "alice", "alice@x.com", "s3cretpass", "hi there")
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, user.Role)
	require.NotEqual(t, "s3cretpass", user.PasswordHash)
	require.True(t, utils.CheckPasswordHash("s3cretpass", user.PasswordHash))

	_, err = svc.Register(context.Background(), "alice", "alice2@x.com", "s3cretpass", "")
	require.ErrorIs(t, err, utils.ErrUsernameExists)

	_, err = svc.Register(context.Background(), "alice2", "alice@x.com", "s3cretpass", "")
	require.ErrorIs(t, err, utils.ErrEmailExists)
}
