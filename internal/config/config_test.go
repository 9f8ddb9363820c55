package config

import "testing"

// TestParseFloatEnv проверяет разбор бюджета из ENV.
func TestParseFloatEnv(t *testing.T) {
	t.Setenv("BUDGET_DEFAULT_MONTHLY", "12500.50")

	got, err := parseFloatEnv("BUDGET_DEFAULT_MONTHLY", 15000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 12500.50 {
		t.Fatalf("expected 12500.50, got %v", got)
	}
}

// TestParseFloatEnvMissing проверяет значение по умолчанию.
func TestParseFloatEnvMissing(t *testing.T) {
	got, err := parseFloatEnv("MISSING_ENV", 15000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 15000 {
		t.Fatalf("expected 15000, got %v", got)
	}
}

// TestParseFloatEnvNegative проверяет отказ на отрицательном значении.
func TestParseFloatEnvNegative(t *testing.T) {
	t.Setenv("BUDGET_DEFAULT_MONTHLY", "-1")

	if _, err := parseFloatEnv("BUDGET_DEFAULT_MONTHLY", 15000); err == nil {
		t.Fatal("expected error for negative value")
	}
}
