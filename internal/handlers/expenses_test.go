package handlers

import (
	"testing"

	"example.com/meal-planner/backend/internal/mealplan"
)

// TestParseRangeValid проверяет корректный разбор периода.
func TestParseRangeValid(t *testing.T) {
	from, to, err := parseRange("2024-03-01", "2024-03-10")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if from.Format(mealplan.DateLayout) != "2024-03-01" {
		t.Fatalf("unexpected start: %s", from.Format(mealplan.DateLayout))
	}
	if to.Format(mealplan.DateLayout) != "2024-03-10" {
		t.Fatalf("unexpected end: %s", to.Format(mealplan.DateLayout))
	}
}

// TestParseRangeInvalid проверяет ошибки при неверном формате дат.
func TestParseRangeInvalid(t *testing.T) {
	if _, _, err := parseRange("2024/03/01", "2024-03-10"); err == nil {
		t.Fatal("expected error for invalid start format")
	}

	if _, _, err := parseRange("2024-03-01", ""); err == nil {
		t.Fatal("expected error for missing end")
	}
}

// TestRoundCurrency проверяет округление денежных полей ответа.
func TestRoundCurrency(t *testing.T) {
	if got := roundCurrency(16.666666); got != 17 {
		t.Fatalf("expected 17, got %v", got)
	}

	if got := roundCurrency(16.4); got != 16 {
		t.Fatalf("expected 16, got %v", got)
	}

	if got := roundCurrency(-2.5); got != -3 {
		t.Fatalf("expected -3, got %v", got)
	}
}

// TestFormatAmount проверяет формат сумм в CSV.
func TestFormatAmount(t *testing.T) {
	if got := formatAmount(12.5); got != "12.50" {
		t.Fatalf("expected 12.50, got %s", got)
	}

	if got := formatAmount(0); got != "0.00" {
		t.Fatalf("expected 0.00, got %s", got)
	}
}
