package mealplan

import (
	"time"

	"example.com/meal-planner/backend/internal/models"
)

// EffectivePlan — вычисленный план на дату после подстановки шаблона.
// Это представление только для чтения, в хранилище оно не записывается.
type EffectivePlan struct {
	Date          string
	HasStoredMenu bool
	Breakfast     models.MealSlot
	Lunch         models.MealSlot
	Dinner        models.MealSlot
}

// Slot возвращает вычисленный слот по имени.
func (p EffectivePlan) Slot(name models.SlotName) models.MealSlot {
	switch name {
	case models.SlotLunch:
		return p.Lunch
	case models.SlotDinner:
		return p.Dinner
	default:
		return p.Breakfast
	}
}

// Resolve вычисляет эффективный план на дату. Подстановка идет отдельно
// по каждому слоту: сохраненный непустой слот всегда важнее шаблона, для
// пустого слота берется daily-элемент или weekly-элемент дня недели.
func Resolve(date time.Time, menu *models.Menu, template *models.RecurringTemplate) EffectivePlan {
	plan := EffectivePlan{
		Date:          FormatDate(date, "yyyy-MM-dd"),
		HasStoredMenu: menu != nil,
	}

	plan.Breakfast = resolveSlot(date, menu, template, models.SlotBreakfast)
	plan.Lunch = resolveSlot(date, menu, template, models.SlotLunch)
	plan.Dinner = resolveSlot(date, menu, template, models.SlotDinner)

	return plan
}

func resolveSlot(date time.Time, menu *models.Menu, template *models.RecurringTemplate, name models.SlotName) models.MealSlot {
	if menu != nil {
		if stored := menu.Slot(name); len(stored.Items) > 0 {
			return stored
		}
	}

	if template == nil {
		return models.MealSlot{}
	}

	return templateSlot(date, template.Meals.Meal(name))
}

func templateSlot(date time.Time, meal models.RecurringMeal) models.MealSlot {
	switch meal.Type {
	case models.MealPatternDaily:
		if len(meal.Items) == 0 {
			return models.MealSlot{}
		}
		return models.MealSlot{Items: meal.Items[:1]}
	case models.MealPatternWeekly:
		index := MondayIndex(date)
		// Шаблон короче семи дней считается пустым, а не ошибкой:
		// он приходит от той же стороны, что может его вовсе не задать.
		if index >= len(meal.Items) {
			return models.MealSlot{}
		}
		return models.MealSlot{Items: meal.Items[index : index+1]}
	default:
		return models.MealSlot{}
	}
}
