package mealplan

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"example.com/meal-planner/backend/internal/models"
)

// TestDailyTotal проверяет сумму по трем слотам.
func TestDailyTotal(t *testing.T) {
	menu := models.Menu{
		Breakfast: models.MealSlot{Items: []models.MealItem{{Name: "Eggs", Price: 100}}},
		Lunch:     models.MealSlot{Items: []models.MealItem{{Name: "Soup", Price: 50}, {Name: "Bread", Price: 10}}},
	}

	if got := DailyTotal(menu); got != 160 {
		t.Fatalf("expected 160, got %v", got)
	}

	if got := DailyTotal(models.Menu{}); got != 0 {
		t.Fatalf("expected 0 for empty menu, got %v", got)
	}
}

// TestDailyTotalMalformedPrice проверяет, что битая цена дает ноль,
// а не ошибку агрегации.
func TestDailyTotalMalformedPrice(t *testing.T) {
	raw := []byte(`{"breakfast":{"items":[{"name":"Eggs","price":"abc"},{"name":"Tea","price":"25"}]}}`)

	var menu models.Menu
	if err := json.Unmarshal(raw, &menu); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := DailyTotal(menu); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}

// TestRangeReport проверяет построение отчета за период.
func TestRangeReport(t *testing.T) {
	menus := []models.Menu{
		{
			Date:      "2024-01-01",
			Breakfast: models.MealSlot{Items: []models.MealItem{{Name: "Eggs", Price: 100}}},
		},
		{
			Date:   "2024-01-02",
			Lunch:  models.MealSlot{Items: []models.MealItem{{Name: "Soup", Price: 50}}},
			Dinner: models.MealSlot{Items: []models.MealItem{{Name: "Pasta", Price: 25}}},
		},
	}

	report, err := RangeReport(menus, date("2024-01-01"), date("2024-01-02"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.Total != 175 {
		t.Fatalf("expected total 175, got %v", report.Total)
	}
	if len(report.PerDay) != 2 {
		t.Fatalf("expected 2 days, got %d", len(report.PerDay))
	}

	first := report.PerDay[0]
	if first.Date != "2024-01-01" || first.Amount != 100 || first.Breakfast != 100 {
		t.Fatalf("unexpected first day: %+v", first)
	}

	second := report.PerDay[1]
	if second.Date != "2024-01-02" || second.Amount != 75 || second.Lunch != 50 || second.Dinner != 25 {
		t.Fatalf("unexpected second day: %+v", second)
	}
}

// TestRangeReportInvalidRange проверяет ошибку перевернутого периода.
func TestRangeReportInvalidRange(t *testing.T) {
	_, err := RangeReport(nil, date("2024-03-10"), date("2024-03-01"))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

// TestRangeReportEmpty проверяет пустой, но корректный период.
func TestRangeReportEmpty(t *testing.T) {
	report, err := RangeReport(nil, date("2024-03-01"), date("2024-03-01"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.Total != 0 || len(report.PerDay) != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

// TestBudgetAnalysis проверяет бюджетную арифметику.
func TestBudgetAnalysis(t *testing.T) {
	summary := BudgetAnalysis(500, 10, 30, 3000)

	if summary.PeriodBudget != 1000 {
		t.Fatalf("expected period budget 1000, got %v", summary.PeriodBudget)
	}
	if summary.RemainingBudget != 500 {
		t.Fatalf("expected remaining budget 500, got %v", summary.RemainingBudget)
	}
	if summary.DailyAverage != 50 {
		t.Fatalf("expected daily average 50, got %v", summary.DailyAverage)
	}
	if summary.ProjectedMonthlyExpense != 1500 {
		t.Fatalf("expected projection 1500, got %v", summary.ProjectedMonthlyExpense)
	}
}

// TestBudgetAnalysisZeroPeriod проверяет нулевой период без деления на ноль.
func TestBudgetAnalysisZeroPeriod(t *testing.T) {
	summary := BudgetAnalysis(500, 0, 30, 3000)

	if summary.DailyAverage != 0 {
		t.Fatalf("expected zero daily average, got %v", summary.DailyAverage)
	}
	if summary.ProjectedMonthlyExpense != 0 {
		t.Fatalf("expected zero projection, got %v", summary.ProjectedMonthlyExpense)
	}
	if summary.PeriodBudget != 0 {
		t.Fatalf("expected zero period budget, got %v", summary.PeriodBudget)
	}
}

// TestBudgetAnalysisUnrounded проверяет, что ядро не округляет значения.
func TestBudgetAnalysisUnrounded(t *testing.T) {
	summary := BudgetAnalysis(100, 3, 31, 1000)

	wantAverage := 100.0 / 3.0
	if math.Abs(summary.DailyAverage-wantAverage) > 1e-9 {
		t.Fatalf("expected daily average %v, got %v", wantAverage, summary.DailyAverage)
	}

	wantPeriod := 1000.0 * 3.0 / 31.0
	if math.Abs(summary.PeriodBudget-wantPeriod) > 1e-9 {
		t.Fatalf("expected period budget %v, got %v", wantPeriod, summary.PeriodBudget)
	}
}
