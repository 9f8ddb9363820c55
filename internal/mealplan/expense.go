package mealplan

import (
	"time"

	"example.com/meal-planner/backend/internal/models"
)

// DayExpense — производная трата за один день с разбивкой по слотам.
// Отдельной сущностью в хранилище она не существует и всегда
// пересчитывается из сохраненных меню.
type DayExpense struct {
	Date      string
	Amount    float64
	Breakfast float64
	Lunch     float64
	Dinner    float64
}

// Report — отчет о тратах за период.
type Report struct {
	PerDay []DayExpense
	Total  float64
}

// BudgetSummary — проекция бюджета за период без округления.
// Округление до целых единиц валюты делает слой представления.
type BudgetSummary struct {
	PeriodBudget            float64
	RemainingBudget         float64
	DailyAverage            float64
	ProjectedMonthlyExpense float64
}

// SlotTotal суммирует цены позиций слота. Пустой слот дает ноль.
func SlotTotal(slot models.MealSlot) float64 {
	var total float64
	for _, item := range slot.Items {
		total += float64(item.Price)
	}

	return total
}

// DailyTotal суммирует цены по всем трем слотам меню.
func DailyTotal(menu models.Menu) float64 {
	var total float64
	for _, name := range models.SlotNames {
		total += SlotTotal(menu.Slot(name))
	}

	return total
}

// RangeReport строит отчет по упорядоченному списку меню за период.
// Для to раньше from возвращает ErrInvalidRange.
func RangeReport(menus []models.Menu, from, to time.Time) (Report, error) {
	if midnight(to).Before(midnight(from)) {
		return Report{}, ErrInvalidRange
	}

	report := Report{PerDay: make([]DayExpense, 0, len(menus))}
	for _, menu := range menus {
		day := DayExpense{
			Date:      menu.Date,
			Breakfast: SlotTotal(menu.Breakfast),
			Lunch:     SlotTotal(menu.Lunch),
			Dinner:    SlotTotal(menu.Dinner),
		}
		day.Amount = day.Breakfast + day.Lunch + day.Dinner

		report.PerDay = append(report.PerDay, day)
		report.Total += day.Amount
	}

	return report, nil
}

// BudgetAnalysis считает проекции бюджета: бюджет периода пропорционален
// числу дней, средний дневной расход при нулевом периоде равен нулю.
func BudgetAnalysis(total float64, periodDays, daysInMonth int, monthlyBudget float64) BudgetSummary {
	summary := BudgetSummary{}

	if daysInMonth > 0 {
		summary.PeriodBudget = monthlyBudget * float64(periodDays) / float64(daysInMonth)
	}
	summary.RemainingBudget = summary.PeriodBudget - total

	if periodDays > 0 {
		summary.DailyAverage = total / float64(periodDays)
	}
	summary.ProjectedMonthlyExpense = summary.DailyAverage * float64(daysInMonth)

	return summary
}
