package handlers

import "testing"

// TestNormalizeName проверяет нормализацию имени пользователя.
func TestNormalizeName(t *testing.T) {
	if got := normalizeName(nil); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}

	empty := "   "
	if got := normalizeName(&empty); got != nil {
		t.Fatalf("expected nil for blank name, got %q", *got)
	}

	padded := "  Alice  "
	got := normalizeName(&padded)
	if got == nil || *got != "Alice" {
		t.Fatalf("expected Alice, got %v", got)
	}
}
