package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/meal-planner/backend/internal/auth"
	"example.com/meal-planner/backend/internal/mealplan"
	"example.com/meal-planner/backend/internal/repository"
)

type ExpenseHandler struct {
	Menus                *repository.MenuRepository
	DefaultMonthlyBudget float64
}

// NewExpenseHandler создает обработчик отчетов о тратах.
func NewExpenseHandler(menus *repository.MenuRepository, defaultMonthlyBudget float64) *ExpenseHandler {
	return &ExpenseHandler{
		Menus:                menus,
		DefaultMonthlyBudget: defaultMonthlyBudget,
	}
}

type DayExpenseResponse struct {
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	Breakfast float64 `json:"breakfast"`
	Lunch     float64 `json:"lunch"`
	Dinner    float64 `json:"dinner"`
}

type ReportResponse struct {
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	PerDay    []DayExpenseResponse `json:"per_day"`
	Total     float64              `json:"total"`
}

type AnalysisResponse struct {
	StartDate               string  `json:"start_date"`
	EndDate                 string  `json:"end_date"`
	DaysInPeriod            int     `json:"days_in_period"`
	MonthlyBudget           float64 `json:"monthly_budget"`
	Total                   float64 `json:"total"`
	PeriodBudget            float64 `json:"period_budget"`
	RemainingBudget         float64 `json:"remaining_budget"`
	DailyAverage            float64 `json:"daily_average"`
	ProjectedMonthlyExpense float64 `json:"projected_monthly_expense"`
}

// Report возвращает траты за период, выведенные из сохраненных меню.
func (h *ExpenseHandler) Report(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	from, to, err := parseRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return badRequest(c, "invalid period, expected start_date and end_date as YYYY-MM-DD")
	}

	report, err := h.rangeReport(c, userID, from, to)
	if err != nil {
		if errors.Is(err, mealplan.ErrInvalidRange) {
			return badRequest(c, "end_date must not be before start_date")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toReportResponse(from, to, report))
}

// Analysis возвращает проекции бюджета за период. Денежные поля ответа
// округлены до целых единиц валюты.
func (h *ExpenseHandler) Analysis(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	from, to, err := parseRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return badRequest(c, "invalid period, expected start_date and end_date as YYYY-MM-DD")
	}

	monthlyBudget := h.DefaultMonthlyBudget
	if raw := strings.TrimSpace(c.QueryParam("monthly_budget")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			return badRequest(c, "monthly_budget must be a non-negative number")
		}
		monthlyBudget = parsed
	}

	periodDays, err := mealplan.DaysBetweenInclusive(from, to)
	if err != nil {
		return badRequest(c, "end_date must not be before start_date")
	}

	report, err := h.rangeReport(c, userID, from, to)
	if err != nil {
		if errors.Is(err, mealplan.ErrInvalidRange) {
			return badRequest(c, "end_date must not be before start_date")
		}
		return serverError(c)
	}

	daysInMonth := mealplan.DaysInMonth(from.Year(), int(from.Month()))
	summary := mealplan.BudgetAnalysis(report.Total, periodDays, daysInMonth, monthlyBudget)

	return c.JSON(http.StatusOK, AnalysisResponse{
		StartDate:               from.Format(mealplan.DateLayout),
		EndDate:                 to.Format(mealplan.DateLayout),
		DaysInPeriod:            periodDays,
		MonthlyBudget:           monthlyBudget,
		Total:                   roundCurrency(report.Total),
		PeriodBudget:            roundCurrency(summary.PeriodBudget),
		RemainingBudget:         roundCurrency(summary.RemainingBudget),
		DailyAverage:            roundCurrency(summary.DailyAverage),
		ProjectedMonthlyExpense: roundCurrency(summary.ProjectedMonthlyExpense),
	})
}

func (h *ExpenseHandler) rangeReport(c echo.Context, userID uuid.UUID, from, to time.Time) (mealplan.Report, error) {
	menus, err := h.Menus.ListRange(c.Request().Context(), userID, from.Format(mealplan.DateLayout), to.Format(mealplan.DateLayout))
	if err != nil {
		return mealplan.Report{}, err
	}

	return mealplan.RangeReport(menus, from, to)
}

func parseRange(startParam, endParam string) (time.Time, time.Time, error) {
	from, err := mealplan.ParseDate(startParam)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to, err := mealplan.ParseDate(endParam)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return from, to, nil
}

func roundCurrency(value float64) float64 {
	return math.Round(value)
}

func toReportResponse(from, to time.Time, report mealplan.Report) ReportResponse {
	response := ReportResponse{
		StartDate: from.Format(mealplan.DateLayout),
		EndDate:   to.Format(mealplan.DateLayout),
		PerDay:    make([]DayExpenseResponse, 0, len(report.PerDay)),
		Total:     report.Total,
	}
	for _, day := range report.PerDay {
		response.PerDay = append(response.PerDay, DayExpenseResponse{
			Date:      day.Date,
			Amount:    day.Amount,
			Breakfast: day.Breakfast,
			Lunch:     day.Lunch,
			Dinner:    day.Dinner,
		})
	}

	return response
}
