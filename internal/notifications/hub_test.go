package notifications

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestHubPublishSubscribe проверяет доставку событий подписчику.
func TestHubPublishSubscribe(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	defer unsubscribe()

	hub.Publish(userID, Event{Type: "menu_updated"})

	select {
	case event := <-ch:
		if event.Type != "menu_updated" {
			t.Fatalf("expected event type menu_updated, got %s", event.Type)
		}
		if event.Timestamp.IsZero() {
			t.Fatal("expected timestamp to be set")
		}
	case <-time.After(time.Second):
		t.Fatal("expected event, got none")
	}
}

// TestHubIsolatesUsers проверяет, что события не утекают чужим подписчикам.
func TestHubIsolatesUsers(t *testing.T) {
	hub := NewHub()

	ch, unsubscribe := hub.Subscribe(uuid.New())
	defer unsubscribe()

	hub.Publish(uuid.New(), Event{Type: "expense_updated"})

	select {
	case event := <-ch:
		t.Fatalf("expected no event, got %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

// TestHubUnsubscribe проверяет, что отписка закрывает канал.
func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	unsubscribe()

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed")
	}

	// Публикация после отписки не должна паниковать.
	hub.Publish(userID, Event{Type: "menu_updated"})
}
