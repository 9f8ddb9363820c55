package mealplan

import (
	"testing"

	"example.com/meal-planner/backend/internal/models"
)

func weeklyItems() []models.MealItem {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	items := make([]models.MealItem, 0, len(names))
	for _, name := range names {
		items = append(items, models.MealItem{Name: name, Price: 10})
	}

	return items
}

// TestResolveFallbackPrecedence проверяет приоритет сохраненного меню над
// шаблоном и независимую подстановку по слотам.
func TestResolveFallbackPrecedence(t *testing.T) {
	// 2024-03-06 — среда, индекс 2 в понедельничном порядке.
	day := date("2024-03-06")

	menu := &models.Menu{
		Date:      "2024-03-06",
		Breakfast: models.MealSlot{Items: []models.MealItem{{Name: "Omelette", Price: 3}}},
	}

	template := &models.RecurringTemplate{
		Meals: models.RecurringMeals{
			Breakfast: models.RecurringMeal{Type: models.MealPatternDaily, Items: []models.MealItem{{Name: "Toast", Price: 1}}},
			Lunch:     models.RecurringMeal{Type: models.MealPatternDaily, Items: []models.MealItem{{Name: "Soup", Price: 5}}},
			Dinner:    models.RecurringMeal{Type: models.MealPatternWeekly, Items: weeklyItems()},
		},
	}

	plan := Resolve(day, menu, template)

	if !plan.HasStoredMenu {
		t.Fatal("expected HasStoredMenu to be true")
	}
	if plan.Date != "2024-03-06" {
		t.Fatalf("unexpected date %s", plan.Date)
	}

	if len(plan.Breakfast.Items) != 1 || plan.Breakfast.Items[0].Name != "Omelette" {
		t.Fatalf("expected stored breakfast to win, got %+v", plan.Breakfast.Items)
	}
	if len(plan.Lunch.Items) != 1 || plan.Lunch.Items[0].Name != "Soup" || plan.Lunch.Items[0].Price != 5 {
		t.Fatalf("expected daily lunch fallback, got %+v", plan.Lunch.Items)
	}
	if len(plan.Dinner.Items) != 1 || plan.Dinner.Items[0].Name != "Wed" {
		t.Fatalf("expected weekly dinner item for Wednesday, got %+v", plan.Dinner.Items)
	}
}

// TestResolveWeeklyAcrossWeek проверяет выбор weekly-элемента для каждого дня.
func TestResolveWeeklyAcrossWeek(t *testing.T) {
	template := &models.RecurringTemplate{
		Meals: models.RecurringMeals{
			Dinner: models.RecurringMeal{Type: models.MealPatternWeekly, Items: weeklyItems()},
		},
	}

	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for offset, want := range names {
		day := date("2024-03-04").AddDate(0, 0, offset)
		plan := Resolve(day, nil, template)

		if len(plan.Dinner.Items) != 1 || plan.Dinner.Items[0].Name != want {
			t.Fatalf("%s: expected %s, got %+v", plan.Date, want, plan.Dinner.Items)
		}
	}
}

// TestResolveNoMenuNoTemplate проверяет пустой план без данных.
func TestResolveNoMenuNoTemplate(t *testing.T) {
	plan := Resolve(date("2024-03-06"), nil, nil)

	if plan.HasStoredMenu {
		t.Fatal("expected HasStoredMenu to be false")
	}
	for _, name := range models.SlotNames {
		if len(plan.Slot(name).Items) != 0 {
			t.Fatalf("expected empty slot %s", name)
		}
	}
}

// TestResolveMalformedWeekly проверяет мягкую деградацию короткого шаблона.
func TestResolveMalformedWeekly(t *testing.T) {
	template := &models.RecurringTemplate{
		Meals: models.RecurringMeals{
			Lunch: models.RecurringMeal{Type: models.MealPatternWeekly, Items: []models.MealItem{{Name: "Mon"}, {Name: "Tue"}}},
		},
	}

	// Пятница, индекс 4 — за пределами двух элементов.
	plan := Resolve(date("2024-03-08"), nil, template)
	if len(plan.Lunch.Items) != 0 {
		t.Fatalf("expected empty lunch for truncated weekly template, got %+v", plan.Lunch.Items)
	}

	// Вторник, индекс 1 — в пределах.
	plan = Resolve(date("2024-03-05"), nil, template)
	if len(plan.Lunch.Items) != 1 || plan.Lunch.Items[0].Name != "Tue" {
		t.Fatalf("expected Tue item, got %+v", plan.Lunch.Items)
	}
}

// TestResolveZeroPriceStoredSlot проверяет, что слот с нулевыми ценами
// все равно считается заполненным и шаблон не подставляется.
func TestResolveZeroPriceStoredSlot(t *testing.T) {
	menu := &models.Menu{
		Lunch: models.MealSlot{Items: []models.MealItem{{Name: "Leftovers", Price: 0}}},
	}
	template := &models.RecurringTemplate{
		Meals: models.RecurringMeals{
			Lunch: models.RecurringMeal{Type: models.MealPatternDaily, Items: []models.MealItem{{Name: "Soup", Price: 5}}},
		},
	}

	plan := Resolve(date("2024-03-06"), menu, template)
	if len(plan.Lunch.Items) != 1 || plan.Lunch.Items[0].Name != "Leftovers" {
		t.Fatalf("expected stored zero-price slot to win, got %+v", plan.Lunch.Items)
	}
}

// TestResolveDailyEmptyItems проверяет пустой daily-шаблон.
func TestResolveDailyEmptyItems(t *testing.T) {
	template := &models.RecurringTemplate{
		Meals: models.RecurringMeals{
			Breakfast: models.RecurringMeal{Type: models.MealPatternDaily},
		},
	}

	plan := Resolve(date("2024-03-06"), nil, template)
	if len(plan.Breakfast.Items) != 0 {
		t.Fatalf("expected empty breakfast, got %+v", plan.Breakfast.Items)
	}
}

// TestResolveUnknownPattern проверяет неизвестный тип шаблона.
func TestResolveUnknownPattern(t *testing.T) {
	template := &models.RecurringTemplate{
		Meals: models.RecurringMeals{
			Dinner: models.RecurringMeal{Type: "monthly", Items: weeklyItems()},
		},
	}

	plan := Resolve(date("2024-03-06"), nil, template)
	if len(plan.Dinner.Items) != 0 {
		t.Fatalf("expected empty dinner for unknown pattern, got %+v", plan.Dinner.Items)
	}
}
