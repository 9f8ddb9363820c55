package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SlotName string

type MealPattern string

const (
	SlotBreakfast SlotName = "breakfast"
	SlotLunch     SlotName = "lunch"
	SlotDinner    SlotName = "dinner"

	MealPatternDaily  MealPattern = "daily"
	MealPatternWeekly MealPattern = "weekly"
)

// SlotNames перечисляет слоты в порядке отображения.
var SlotNames = [3]SlotName{SlotBreakfast, SlotLunch, SlotDinner}

type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         *string    `json:"name,omitempty"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	TotalLogins  int        `json:"total_logins"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Price хранит цену позиции меню. Нечисловое значение из хранилища
// приводится к нулю вместо ошибки: битая цена не ломает отчеты.
type Price float64

// UnmarshalJSON принимает число или числовую строку, иначе ноль.
func (p *Price) UnmarshalJSON(data []byte) error {
	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*p = Price(number)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			*p = Price(parsed)
			return nil
		}
	}

	*p = 0
	return nil
}

type MealItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Recipe      string `json:"recipe,omitempty"`
	Price       Price  `json:"price"`
}

// MealSlot хранит упорядоченный список позиций одного приема пищи.
// Слот считается заполненным при непустом списке, цены роли не играют.
type MealSlot struct {
	Items []MealItem `json:"items"`
}

// Menu — единственный документ меню на пару (пользователь, дата).
type Menu struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Date      string    `json:"date"`
	Breakfast MealSlot  `json:"breakfast"`
	Lunch     MealSlot  `json:"lunch"`
	Dinner    MealSlot  `json:"dinner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Slot возвращает слот по имени для единообразной обработки трех полей.
func (m Menu) Slot(name SlotName) MealSlot {
	switch name {
	case SlotLunch:
		return m.Lunch
	case SlotDinner:
		return m.Dinner
	default:
		return m.Breakfast
	}
}

// RecurringMeal описывает шаблон одного слота: либо общий набор на каждый
// день (daily), либо семь наборов по дням недели (weekly, с понедельника).
type RecurringMeal struct {
	Type  MealPattern `json:"type"`
	Items []MealItem  `json:"items"`
}

type RecurringMeals struct {
	Breakfast RecurringMeal `json:"breakfast"`
	Lunch     RecurringMeal `json:"lunch"`
	Dinner    RecurringMeal `json:"dinner"`
}

// Meal возвращает шаблон слота по имени.
func (m RecurringMeals) Meal(name SlotName) RecurringMeal {
	switch name {
	case SlotLunch:
		return m.Lunch
	case SlotDinner:
		return m.Dinner
	default:
		return m.Breakfast
	}
}

// RecurringTemplate — единственный повторяющийся шаблон пользователя.
type RecurringTemplate struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Meals     RecurringMeals `json:"meals"`
	Duration  string         `json:"duration"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}
