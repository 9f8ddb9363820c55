package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/meal-planner/backend/internal/auth"
	"example.com/meal-planner/backend/internal/notifications"
)

type NotificationHandler struct {
	Hub *notifications.Hub
}

// NewNotificationHandler создает обработчик SSE-потока уведомлений.
func NewNotificationHandler(hub *notifications.Hub) *NotificationHandler {
	return &NotificationHandler{Hub: hub}
}

// Stream держит SSE-соединение и транслирует события пользователя.
// Соединение живет до отмены контекста запроса.
func (h *NotificationHandler) Stream(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	response := c.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	events, unsubscribe := h.Hub.Subscribe(userID)
	defer unsubscribe()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, open := <-events:
			if !open {
				return nil
			}
			if err := writeSSE(response, event); err != nil {
				return nil
			}
		}
	}
}

func writeSSE(response *echo.Response, event notifications.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(response, "event: %s\ndata: %s\n\n", event.Type, payload); err != nil {
		return err
	}
	response.Flush()

	return nil
}

func publishMenuUpdate(hub *notifications.Hub, userID uuid.UUID, date string) {
	hub.Publish(userID, notifications.Event{
		Type: "menu_updated",
		Data: map[string]string{"date": date},
	})
}

func publishExpenseUpdate(hub *notifications.Hub, userID uuid.UUID, date string, dailyTotal float64) {
	hub.Publish(userID, notifications.Event{
		Type: "expense_updated",
		Data: map[string]interface{}{
			"date":        date,
			"daily_total": dailyTotal,
		},
	})
}
