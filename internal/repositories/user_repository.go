package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopease/shopease/internal/models"
	"github.com/shopease/shopease/internal/utils"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
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

	query := `
		INSERT INTO users (username, email, password_hash, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, user.Username, user.Email, user.PasswordHash, user.IsActive).Scan(&user.UserID, &user.CreatedAt)
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	user := &models.User{}

	query := `
		SELECT user_id, username, email, password_hash, created_at, is_active
		FROM users
		WHERE username = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, username).Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.IsActive)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return user, nil
}
