package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/meal-planner/backend/internal/mealplan"
	"example.com/meal-planner/backend/internal/models"
)

type MenuRepository struct {
	db *pgxpool.Pool
}

// MenuSlots — три слота меню, передаваемые при сохранении.
type MenuSlots struct {
	Breakfast models.MealSlot
	Lunch     models.MealSlot
	Dinner    models.MealSlot
}

// MenuStats — производная статистика по меню пользователя.
type MenuStats struct {
	MenusCreated      int
	LastMenuCreatedAt *time.Time
}

// NewMenuRepository создает репозиторий меню.
func NewMenuRepository(db *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{db: db}
}

// Get возвращает меню пользователя на дату.
func (r *MenuRepository) Get(ctx context.Context, userID uuid.UUID, date string) (models.Menu, error) {
	var menu models.Menu

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, date, breakfast, lunch, dinner, created_at, updated_at
		 FROM menus
		 WHERE user_id = $1 AND date = $2`,
		userID, date,
	).Scan(&menu.ID, &menu.UserID, &menu.Date, &menu.Breakfast, &menu.Lunch, &menu.Dinner, &menu.CreatedAt, &menu.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return menu, ErrNotFound
		}
		return menu, err
	}

	return menu, nil
}

// List возвращает все меню пользователя как отображение дата → меню.
func (r *MenuRepository) List(ctx context.Context, userID uuid.UUID) (map[string]models.Menu, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, date, breakfast, lunch, dinner, created_at, updated_at
		 FROM menus
		 WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := make(map[string]models.Menu)
	for rows.Next() {
		var menu models.Menu

		err := rows.Scan(&menu.ID, &menu.UserID, &menu.Date, &menu.Breakfast, &menu.Lunch, &menu.Dinner, &menu.CreatedAt, &menu.UpdatedAt)
		if err != nil {
			return nil, err
		}

		menus[menu.Date] = menu
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return menus, nil
}

// ListRange возвращает меню за период по возрастанию даты.
// Даты ISO сравниваются как строки.
func (r *MenuRepository) ListRange(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]models.Menu, error) {
	if startDate > endDate {
		return nil, mealplan.ErrInvalidRange
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, date, breakfast, lunch, dinner, created_at, updated_at
		 FROM menus
		 WHERE user_id = $1 AND date >= $2 AND date <= $3
		 ORDER BY date`,
		userID, startDate, endDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := make([]models.Menu, 0)
	for rows.Next() {
		var menu models.Menu

		err := rows.Scan(&menu.ID, &menu.UserID, &menu.Date, &menu.Breakfast, &menu.Lunch, &menu.Dinner, &menu.CreatedAt, &menu.UpdatedAt)
		if err != nil {
			return nil, err
		}

		menus = append(menus, menu)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return menus, nil
}

// Upsert создает меню на дату или перезаписывает слоты существующего.
// created_at выставляется только при создании, updated_at обновляется всегда.
func (r *MenuRepository) Upsert(ctx context.Context, userID uuid.UUID, date string, slots MenuSlots) (models.Menu, error) {
	var menu models.Menu

	err := r.db.QueryRow(ctx,
		`INSERT INTO menus (user_id, date, breakfast, lunch, dinner)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, date) DO UPDATE
		 SET breakfast = EXCLUDED.breakfast,
		     lunch = EXCLUDED.lunch,
		     dinner = EXCLUDED.dinner,
		     updated_at = NOW()
		 RETURNING id, user_id, date, breakfast, lunch, dinner, created_at, updated_at`,
		userID, date, slots.Breakfast, slots.Lunch, slots.Dinner,
	).Scan(&menu.ID, &menu.UserID, &menu.Date, &menu.Breakfast, &menu.Lunch, &menu.Dinner, &menu.CreatedAt, &menu.UpdatedAt)
	if err != nil {
		return menu, err
	}

	return menu, nil
}

// Update перезаписывает слоты существующего меню, не создавая нового.
func (r *MenuRepository) Update(ctx context.Context, userID uuid.UUID, date string, slots MenuSlots) (models.Menu, error) {
	var menu models.Menu

	err := r.db.QueryRow(ctx,
		`UPDATE menus
		 SET breakfast = $3,
		     lunch = $4,
		     dinner = $5,
		     updated_at = NOW()
		 WHERE user_id = $1 AND date = $2
		 RETURNING id, user_id, date, breakfast, lunch, dinner, created_at, updated_at`,
		userID, date, slots.Breakfast, slots.Lunch, slots.Dinner,
	).Scan(&menu.ID, &menu.UserID, &menu.Date, &menu.Breakfast, &menu.Lunch, &menu.Dinner, &menu.CreatedAt, &menu.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return menu, ErrNotFound
		}
		return menu, err
	}

	return menu, nil
}

// Delete удаляет меню на дату. Отсутствующее меню — ErrNotFound,
// чтобы вызывающий отличал реальное удаление от no-op.
func (r *MenuRepository) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM menus
		 WHERE user_id = $1 AND date = $2`,
		userID, date,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Stats возвращает счетчики меню для страницы активности.
func (r *MenuRepository) Stats(ctx context.Context, userID uuid.UUID) (MenuStats, error) {
	var stats MenuStats

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), MAX(created_at)
		 FROM menus
		 WHERE user_id = $1`,
		userID,
	).Scan(&stats.MenusCreated, &stats.LastMenuCreatedAt)
	if err != nil {
		return stats, err
	}

	return stats, nil
}
