package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrDuplicate is returned when an insert violates a unique constraint
var ErrDuplicate = errors.New("duplicate record")

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user and fills in its generated id and created_at
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := ur.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)

	if database.IsUniqueViolation(err) {
		return fmt.Errorf("create user %s: %w", user.Username, ErrDuplicate)
	}
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, username, email, password, created_at
		FROM users
		WHERE id = $1
	`

	user, err := ur.scanOne(ur.db.QueryRow(ctx, query, id))
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return user, nil
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, email, password, created_at
		FROM users
		WHERE username = $1
	`

	user, err := ur.scanOne(ur.db.QueryRow(ctx, query, username))
	if err != nil {
		ur.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return user, nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, username, email, password, created_at
		FROM users
		ORDER BY id
	`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close() // IMPORTANT: Close rows to release database connection

	users := []*entity.User{}
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.CreatedAt,
		)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	if err := ur.db.QueryRow(ctx, query).Scan(&count); err != nil {
		ur.log.Error("Database error counting users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}

// scanOne returns nil, nil when the row does not exist
func (ur *userRepository) scanOne(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
