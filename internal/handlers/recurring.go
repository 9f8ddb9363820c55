package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/meal-planner/backend/internal/auth"
	"example.com/meal-planner/backend/internal/models"
	"example.com/meal-planner/backend/internal/repository"
)

type RecurringHandler struct {
	Recurring *repository.RecurringRepository
}

// NewRecurringHandler создает обработчик повторяющихся шаблонов.
func NewRecurringHandler(recurring *repository.RecurringRepository) *RecurringHandler {
	return &RecurringHandler{Recurring: recurring}
}

type RecurringMealRequest struct {
	Type  string            `json:"type" validate:"required,oneof=daily weekly"`
	Items []MealItemRequest `json:"items" validate:"max=50,dive"`
}

type RecurringMealsRequest struct {
	Breakfast RecurringMealRequest `json:"breakfast"`
	Lunch     RecurringMealRequest `json:"lunch"`
	Dinner    RecurringMealRequest `json:"dinner"`
}

type RecurringRequest struct {
	Meals    RecurringMealsRequest `json:"meals"`
	Duration string                `json:"duration" validate:"required,max=100"`
}

type RecurringResponse struct {
	ID        uuid.UUID             `json:"id"`
	Meals     models.RecurringMeals `json:"meals"`
	Duration  string                `json:"duration"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// Get возвращает шаблон пользователя.
func (h *RecurringHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	template, err := h.Recurring.Get(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "recurring meals not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toRecurringResponse(template))
}

// Upsert сохраняет шаблон пользователя, перезаписывая существующий.
// Weekly-список короче семи элементов принимается: при вычислении плана
// отсутствующие дни дают пустой слот.
func (h *RecurringHandler) Upsert(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req RecurringRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	meals := models.RecurringMeals{
		Breakfast: toRecurringMeal(req.Meals.Breakfast),
		Lunch:     toRecurringMeal(req.Meals.Lunch),
		Dinner:    toRecurringMeal(req.Meals.Dinner),
	}

	template, err := h.Recurring.Upsert(c.Request().Context(), userID, meals, req.Duration)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toRecurringResponse(template))
}

func toRecurringMeal(req RecurringMealRequest) models.RecurringMeal {
	meal := models.RecurringMeal{
		Type:  models.MealPattern(req.Type),
		Items: make([]models.MealItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		meal.Items = append(meal.Items, models.MealItem{
			Name:        item.Name,
			Description: item.Description,
			Recipe:      item.Recipe,
			Price:       item.Price,
		})
	}

	return meal
}

func toRecurringResponse(template models.RecurringTemplate) RecurringResponse {
	return RecurringResponse{
		ID:        template.ID,
		Meals:     template.Meals,
		Duration:  template.Duration,
		CreatedAt: template.CreatedAt,
		UpdatedAt: template.UpdatedAt,
	}
}
