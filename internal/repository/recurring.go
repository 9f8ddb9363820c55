package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/meal-planner/backend/internal/models"
)

type RecurringRepository struct {
	db *pgxpool.Pool
}

// NewRecurringRepository создает репозиторий повторяющихся шаблонов.
func NewRecurringRepository(db *pgxpool.Pool) *RecurringRepository {
	return &RecurringRepository{db: db}
}

// Get возвращает шаблон пользователя.
func (r *RecurringRepository) Get(ctx context.Context, userID uuid.UUID) (models.RecurringTemplate, error) {
	var template models.RecurringTemplate

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, meals, duration, created_at, updated_at
		 FROM recurring_meals
		 WHERE user_id = $1`,
		userID,
	).Scan(&template.ID, &template.UserID, &template.Meals, &template.Duration, &template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return template, ErrNotFound
		}
		return template, err
	}

	return template, nil
}

// Upsert создает шаблон пользователя или перезаписывает существующий.
// У пользователя ровно один шаблон, конфликт по user_id — это обновление.
func (r *RecurringRepository) Upsert(ctx context.Context, userID uuid.UUID, meals models.RecurringMeals, duration string) (models.RecurringTemplate, error) {
	var template models.RecurringTemplate

	err := r.db.QueryRow(ctx,
		`INSERT INTO recurring_meals (user_id, meals, duration)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE
		 SET meals = EXCLUDED.meals,
		     duration = EXCLUDED.duration,
		     updated_at = NOW()
		 RETURNING id, user_id, meals, duration, created_at, updated_at`,
		userID, meals, duration,
	).Scan(&template.ID, &template.UserID, &template.Meals, &template.Duration, &template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		return template, err
	}

	return template, nil
}
