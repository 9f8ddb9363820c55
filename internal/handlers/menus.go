package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/meal-planner/backend/internal/auth"
	"example.com/meal-planner/backend/internal/mealplan"
	"example.com/meal-planner/backend/internal/models"
	"example.com/meal-planner/backend/internal/notifications"
	"example.com/meal-planner/backend/internal/repository"
)

type MenuHandler struct {
	Menus     *repository.MenuRepository
	Recurring *repository.RecurringRepository
	Notifier  *notifications.Hub
}

// NewMenuHandler создает обработчик меню.
func NewMenuHandler(menus *repository.MenuRepository, recurring *repository.RecurringRepository, notifier *notifications.Hub) *MenuHandler {
	return &MenuHandler{
		Menus:     menus,
		Recurring: recurring,
		Notifier:  notifier,
	}
}

type MealItemRequest struct {
	Name        string       `json:"name" validate:"required,max=200"`
	Description string       `json:"description" validate:"max=2000"`
	Recipe      string       `json:"recipe" validate:"max=10000"`
	Price       models.Price `json:"price" validate:"gte=0"`
}

type MealSlotRequest struct {
	Items []MealItemRequest `json:"items" validate:"max=50,dive"`
}

type MenuRequest struct {
	Date      string          `json:"date" validate:"required"`
	Breakfast MealSlotRequest `json:"breakfast"`
	Lunch     MealSlotRequest `json:"lunch"`
	Dinner    MealSlotRequest `json:"dinner"`
}

type MenuResponse struct {
	ID        uuid.UUID       `json:"id"`
	Date      string          `json:"date"`
	Breakfast models.MealSlot `json:"breakfast"`
	Lunch     models.MealSlot `json:"lunch"`
	Dinner    models.MealSlot `json:"dinner"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type MenuListResponse struct {
	Menus map[string]MenuResponse `json:"menus"`
}

type EffectivePlanResponse struct {
	Date          string          `json:"date"`
	DayOfWeek     string          `json:"day_of_week"`
	HasStoredMenu bool            `json:"has_stored_menu"`
	Breakfast     models.MealSlot `json:"breakfast"`
	Lunch         models.MealSlot `json:"lunch"`
	Dinner        models.MealSlot `json:"dinner"`
}

// List возвращает все сохраненные меню пользователя, дата → меню.
func (h *MenuHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	menus, err := h.Menus.List(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	response := MenuListResponse{Menus: make(map[string]MenuResponse, len(menus))}
	for date, menu := range menus {
		response.Menus[date] = toMenuResponse(menu)
	}

	return c.JSON(http.StatusOK, response)
}

// Get возвращает эффективный план на дату: сохраненное меню с подстановкой
// повторяющегося шаблона в пустые слоты. Отвечает 200 и для дат без меню.
func (h *MenuHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	date, err := mealplan.ParseDate(c.Param("date"))
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}
	dateKey := date.Format(mealplan.DateLayout)

	var menu *models.Menu
	stored, err := h.Menus.Get(c.Request().Context(), userID, dateKey)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return serverError(c)
		}
	} else {
		menu = &stored
	}

	var template *models.RecurringTemplate
	recurring, err := h.Recurring.Get(c.Request().Context(), userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return serverError(c)
		}
	} else {
		template = &recurring
	}

	plan := mealplan.Resolve(date, menu, template)

	return c.JSON(http.StatusOK, EffectivePlanResponse{
		Date:          plan.Date,
		DayOfWeek:     mealplan.DayOfWeekName(date),
		HasStoredMenu: plan.HasStoredMenu,
		Breakfast:     plan.Breakfast,
		Lunch:         plan.Lunch,
		Dinner:        plan.Dinner,
	})
}

// Create сохраняет меню на дату. Повторная отправка на ту же дату
// перезаписывает слоты, а не создает дубликат.
func (h *MenuHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req MenuRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	date, err := mealplan.ParseDate(req.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}
	dateKey := date.Format(mealplan.DateLayout)

	menu, err := h.Menus.Upsert(c.Request().Context(), userID, dateKey, slotsFromRequest(req))
	if err != nil {
		return serverError(c)
	}

	h.publishMenuChange(userID, menu)

	status := http.StatusOK
	if menu.CreatedAt.Equal(menu.UpdatedAt) {
		status = http.StatusCreated
	}

	return c.JSON(status, toMenuResponse(menu))
}

// Update перезаписывает существующее меню на дату из пути.
func (h *MenuHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	date, err := mealplan.ParseDate(c.Param("date"))
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}
	dateKey := date.Format(mealplan.DateLayout)

	var req MenuRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	// Дата берется из пути, поле date тела здесь не обязательно.
	req.Date = dateKey
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	menu, err := h.Menus.Update(c.Request().Context(), userID, dateKey, slotsFromRequest(req))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "menu not found")
		}
		return serverError(c)
	}

	h.publishMenuChange(userID, menu)

	return c.JSON(http.StatusOK, toMenuResponse(menu))
}

// Delete удаляет меню на дату.
func (h *MenuHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	date, err := mealplan.ParseDate(c.Param("date"))
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}
	dateKey := date.Format(mealplan.DateLayout)

	if err := h.Menus.Delete(c.Request().Context(), userID, dateKey); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "menu not found")
		}
		return serverError(c)
	}

	publishMenuUpdate(h.Notifier, userID, dateKey)
	publishExpenseUpdate(h.Notifier, userID, dateKey, 0)

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *MenuHandler) publishMenuChange(userID uuid.UUID, menu models.Menu) {
	publishMenuUpdate(h.Notifier, userID, menu.Date)
	publishExpenseUpdate(h.Notifier, userID, menu.Date, mealplan.DailyTotal(menu))
}

func slotsFromRequest(req MenuRequest) repository.MenuSlots {
	return repository.MenuSlots{
		Breakfast: toMealSlot(req.Breakfast),
		Lunch:     toMealSlot(req.Lunch),
		Dinner:    toMealSlot(req.Dinner),
	}
}

func toMealSlot(req MealSlotRequest) models.MealSlot {
	slot := models.MealSlot{Items: make([]models.MealItem, 0, len(req.Items))}
	for _, item := range req.Items {
		slot.Items = append(slot.Items, models.MealItem{
			Name:        item.Name,
			Description: item.Description,
			Recipe:      item.Recipe,
			Price:       item.Price,
		})
	}

	return slot
}

func toMenuResponse(menu models.Menu) MenuResponse {
	return MenuResponse{
		ID:        menu.ID,
		Date:      menu.Date,
		Breakfast: menu.Breakfast,
		Lunch:     menu.Lunch,
		Dinner:    menu.Dinner,
		CreatedAt: menu.CreatedAt,
		UpdatedAt: menu.UpdatedAt,
	}
}
