package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/meal-planner/backend/internal/models"
)

const uniqueViolation = "23505"

type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create создает пользователя. Повторный email — ErrConflict.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, name *string) (models.User, error) {
	var user models.User

	err := r.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name)
		 VALUES ($1, $2, $3)
		 RETURNING id, email, password_hash, name, last_login_at, total_logins, created_at, updated_at`,
		email, passwordHash, name,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.LastLoginAt, &user.TotalLogins, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user, ErrConflict
		}
		return user, err
	}

	return user, nil
}

// GetByEmail возвращает пользователя по email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.get(ctx, `WHERE email = $1`, email)
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) get(ctx context.Context, where string, arg any) (models.User, error) {
	var user models.User

	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, name, last_login_at, total_logins, created_at, updated_at
		 FROM users `+where,
		arg,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.LastLoginAt, &user.TotalLogins, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}

	return user, nil
}

// RecordLogin ставит отметку входа и увеличивает счетчик входов.
func (r *UserRepository) RecordLogin(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE users
		 SET last_login_at = NOW(),
		     total_logins = total_logins + 1
		 WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// LoginActivity — счетчики входов для страницы активности.
type LoginActivity struct {
	LastLoginAt *time.Time
	TotalLogins int
}

// Activity возвращает счетчики входов пользователя.
func (r *UserRepository) Activity(ctx context.Context, id uuid.UUID) (LoginActivity, error) {
	var activity LoginActivity

	err := r.db.QueryRow(ctx,
		`SELECT last_login_at, total_logins
		 FROM users
		 WHERE id = $1`,
		id,
	).Scan(&activity.LastLoginAt, &activity.TotalLogins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activity, ErrNotFound
		}
		return activity, err
	}

	return activity, nil
}
