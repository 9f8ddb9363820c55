package mealplan

import (
	"errors"
	"testing"
	"time"
)

func date(value string) time.Time {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		panic(err)
	}

	return parsed
}

// TestFormatDate проверяет токены форматирования даты.
func TestFormatDate(t *testing.T) {
	// 2024-03-06 — среда.
	day := date("2024-03-06")

	for _, tc := range []struct {
		pattern string
		want    string
	}{
		{"yyyy-MM-dd", "2024-03-06"},
		{"MMMM yyyy", "March 2024"},
		{"EEEE, MMMM d, yyyy", "Wednesday, March 6, 2024"},
		{"d MMMM", "6 March"},
	} {
		if got := FormatDate(day, tc.pattern); got != tc.want {
			t.Fatalf("pattern %q: expected %q, got %q", tc.pattern, tc.want, got)
		}
	}
}

// TestFormatDateWeekdayLiteral проверяет, что буква d внутри уже
// подставленного имени дня не трогается.
func TestFormatDateWeekdayLiteral(t *testing.T) {
	got := FormatDate(date("2024-03-06"), "EEEE d")
	if got != "Wednesday 6" {
		t.Fatalf("expected %q, got %q", "Wednesday 6", got)
	}
}

// TestDaysBetweenInclusive проверяет включающий подсчет дней.
func TestDaysBetweenInclusive(t *testing.T) {
	for _, tc := range []struct {
		from, to string
		want     int
	}{
		{"2024-01-01", "2024-01-01", 1},
		{"2024-01-01", "2024-01-10", 10},
		{"2024-02-28", "2024-03-01", 3},
	} {
		got, err := DaysBetweenInclusive(date(tc.from), date(tc.to))
		if err != nil {
			t.Fatalf("%s..%s: expected no error, got %v", tc.from, tc.to, err)
		}
		if got != tc.want {
			t.Fatalf("%s..%s: expected %d days, got %d", tc.from, tc.to, tc.want, got)
		}
	}
}

// TestDaysBetweenInclusiveInvalid проверяет ошибку перевернутого отрезка.
func TestDaysBetweenInclusiveInvalid(t *testing.T) {
	_, err := DaysBetweenInclusive(date("2024-03-10"), date("2024-03-01"))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

// TestDaysInMonth проверяет длину месяца и високосные годы.
func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year, month, want int
	}{
		{2024, 1, 31},
		{2024, 2, 29},
		{2023, 2, 28},
		{2000, 2, 29},
		{1900, 2, 28},
		{2024, 4, 30},
		{2024, 12, 31},
	} {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Fatalf("%d-%02d: expected %d days, got %d", tc.year, tc.month, tc.want, got)
		}
	}
}

// TestDayOfWeekName проверяет воскресную индексацию имен дней.
func TestDayOfWeekName(t *testing.T) {
	if got := DayOfWeekName(date("2024-03-03")); got != "Sunday" {
		t.Fatalf("expected Sunday, got %s", got)
	}
	if got := DayOfWeekName(date("2024-03-04")); got != "Monday" {
		t.Fatalf("expected Monday, got %s", got)
	}
}

// TestMondayIndex проверяет таблицу перевода в понедельничный порядок.
func TestMondayIndex(t *testing.T) {
	for offset, want := range []int{0, 1, 2, 3, 4, 5, 6} {
		// 2024-03-04 — понедельник.
		day := date("2024-03-04").AddDate(0, 0, offset)
		if got := MondayIndex(day); got != want {
			t.Fatalf("%s: expected index %d, got %d", day.Format(DateLayout), want, got)
		}
	}
}

// TestParseDate проверяет строгий разбор даты.
func TestParseDate(t *testing.T) {
	if _, err := ParseDate(" 2024-01-02 "); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, raw := range []string{"2024/01/02", "02-01-2024", "2024-13-01", ""} {
		if _, err := ParseDate(raw); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("%q: expected ErrInvalidRange, got %v", raw, err)
		}
	}
}
