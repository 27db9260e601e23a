package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/Norumai01/HonkaiBackendV2/internal/models"
	"github.com/Norumai01/HonkaiBackendV2/internal/utils"
)

// UserRepository defines the interface for user data operations.
// Get* methods return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

type userRepo struct {
	db DB
}

// NewUserRepository creates a new instance of the user repository.
func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	// The caller is responsible for hashing the password. This repository
	// just stores the hash it's given. The database assigns created_at,
	// read back so the returned model matches the stored row.
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (
			id, username, email, password_hash, role, bio, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`, user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.Bio)
	if err := row.Scan(&user.CreatedAt); err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE email=$1", email)
	return scanUser(row)
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE username=$1", username)
	return scanUser(row)
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE id=$1", id)
	return scanUser(row)
}

func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, baseSelectUser()+" ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func baseSelectUser() string {
	return `
		SELECT id, username, email, password_hash, role, bio, created_at
		FROM users`
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var role string
	var bio *string

	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&role, &bio, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	user.Role = models.RoleType(role)
	if bio != nil {
		user.Bio = *bio
	}

	return &user, nil
}

// mapUniqueViolation translates Postgres unique-constraint failures
// into the domain errors the controllers expect.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_username_key":
			return utils.ErrUsernameExists
		case "users_email_key":
			return utils.ErrEmailExists
		}
	}
	return err
}
