package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/meal-planner/backend/internal/auth"
	"example.com/meal-planner/backend/internal/repository"
)

type ActivityHandler struct {
	Users *repository.UserRepository
	Menus *repository.MenuRepository
}

// NewActivityHandler создает обработчик страницы активности.
func NewActivityHandler(users *repository.UserRepository, menus *repository.MenuRepository) *ActivityHandler {
	return &ActivityHandler{
		Users: users,
		Menus: menus,
	}
}

type ActivityResponse struct {
	UserID            uuid.UUID  `json:"user_id"`
	LastLogin         *time.Time `json:"last_login"`
	TotalLogins       int        `json:"total_logins"`
	MenusCreated      int        `json:"menus_created"`
	LastMenuCreatedAt *time.Time `json:"last_menu_created_at"`
}

// Get возвращает сводку активности пользователя.
// Пользователь видит только собственную активность.
func (h *ActivityHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	requestedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if requestedID != userID {
		return forbidden(c)
	}

	logins, err := h.Users.Activity(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	stats, err := h.Menus.Stats(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, ActivityResponse{
		UserID:            userID,
		LastLogin:         logins.LastLoginAt,
		TotalLogins:       logins.TotalLogins,
		MenusCreated:      stats.MenusCreated,
		LastMenuCreatedAt: stats.LastMenuCreatedAt,
	})
}
