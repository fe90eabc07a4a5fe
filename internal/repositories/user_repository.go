package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/google/uuid"
)

// UserRepository stores accounts. Emails are stored and looked up exactly as
// given; callers lower-case them first.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail includes the password hash for login.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID leaves Password empty.
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if user.Role == "" {
		user.Role = models.RoleCustomer
	}

	row := r.DB.QueryRowContext(dbCtx, `
		INSERT INTO users (email, password, name, phone, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		user.Email, user.Password, user.Name, user.Phone, user.Role)

	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert user %s: %w", user.Email, mapError(err))
	}

	return nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	u := &models.User{}

	row := r.DB.QueryRowContext(dbCtx, `
		SELECT id, email, password, name, phone, role, created_at, updated_at
		FROM users
		WHERE email = $1`, email)

	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", mapError(err))
	}

	return u, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	u := &models.User{}

	row := r.DB.QueryRowContext(dbCtx, `
		SELECT id, email, name, phone, role, created_at, updated_at
		FROM users
		WHERE id = $1`, id)

	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, mapError(err))
	}

	return u, nil
}
