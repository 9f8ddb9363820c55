package models

import (
	"encoding/json"
	"testing"
)

// TestPriceUnmarshalNumber проверяет разбор числовой цены.
func TestPriceUnmarshalNumber(t *testing.T) {
	var item MealItem
	if err := json.Unmarshal([]byte(`{"name":"Soup","price":5.5}`), &item); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if item.Price != 5.5 {
		t.Fatalf("expected price 5.5, got %v", item.Price)
	}
}

// TestPriceUnmarshalNumericString проверяет приведение строковой цены.
func TestPriceUnmarshalNumericString(t *testing.T) {
	var item MealItem
	if err := json.Unmarshal([]byte(`{"name":"Soup","price":" 12.5 "}`), &item); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if item.Price != 12.5 {
		t.Fatalf("expected price 12.5, got %v", item.Price)
	}
}

// TestPriceUnmarshalGarbage проверяет деградацию битой цены в ноль.
func TestPriceUnmarshalGarbage(t *testing.T) {
	for _, raw := range []string{`"abc"`, `null`, `{"a":1}`, `[1]`} {
		var price Price
		if err := json.Unmarshal([]byte(raw), &price); err != nil {
			t.Fatalf("expected no error for %s, got %v", raw, err)
		}

		if price != 0 {
			t.Fatalf("expected zero price for %s, got %v", raw, price)
		}
	}
}

// TestMenuSlot проверяет доступ к слотам по имени.
func TestMenuSlot(t *testing.T) {
	menu := Menu{
		Breakfast: MealSlot{Items: []MealItem{{Name: "Oatmeal"}}},
		Lunch:     MealSlot{Items: []MealItem{{Name: "Soup"}}},
		Dinner:    MealSlot{Items: []MealItem{{Name: "Pasta"}}},
	}

	for _, tc := range []struct {
		slot SlotName
		want string
	}{
		{SlotBreakfast, "Oatmeal"},
		{SlotLunch, "Soup"},
		{SlotDinner, "Pasta"},
	} {
		got := menu.Slot(tc.slot)
		if len(got.Items) != 1 || got.Items[0].Name != tc.want {
			t.Fatalf("slot %s: expected %s, got %+v", tc.slot, tc.want, got.Items)
		}
	}
}
