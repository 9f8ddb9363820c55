package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"example.com/meal-planner/backend/internal/auth"
	"example.com/meal-planner/backend/internal/mealplan"
)

// ExportCSV отдает отчет о тратах за период файлом CSV.
func (h *ExpenseHandler) ExportCSV(c echo.Context) error {
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

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"date", "breakfast", "lunch", "dinner", "total"}); err != nil {
		return serverError(c)
	}

	for _, day := range report.PerDay {
		record := []string{
			day.Date,
			formatAmount(day.Breakfast),
			formatAmount(day.Lunch),
			formatAmount(day.Dinner),
			formatAmount(day.Amount),
		}
		if err := writer.Write(record); err != nil {
			return serverError(c)
		}
	}

	if err := writer.Write([]string{"total", "", "", "", formatAmount(report.Total)}); err != nil {
		return serverError(c)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := fmt.Sprintf("expenses_%s_%s.csv",
		from.Format(mealplan.DateLayout), to.Format(mealplan.DateLayout))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
