// Package mealplan содержит чистую доменную логику планировщика меню:
// календарные утилиты, вычисление эффективного плана на дату и агрегацию
// расходов. Пакет не знает ни про HTTP, ни про хранилище.
package mealplan

import (
	"errors"
	"strings"
	"time"
)

// DateLayout — единственный формат календарной даты в системе.
// Даты сравниваются как строки, часовые пояса не интерпретируются.
const DateLayout = "2006-01-02"

var ErrInvalidRange = errors.New("invalid date range")

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// dayNames индексируется как time.Weekday: воскресенье первое.
// Используется только для отображения.
var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// mondayFirst — явная таблица перевода из воскресного порядка time.Weekday
// в понедельничный порядок, в котором хранятся элементы weekly-шаблона.
var mondayFirst = map[time.Weekday]int{
	time.Monday:    0,
	time.Tuesday:   1,
	time.Wednesday: 2,
	time.Thursday:  3,
	time.Friday:    4,
	time.Saturday:  5,
	time.Sunday:    6,
}

// ParseDate разбирает строгую календарную дату YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidRange
	}

	return parsed, nil
}

// FormatDate печатает дату по шаблону с токенами yyyy, MM, MMMM, dd, d, EEEE.
// Работает только с календарными полями, без преобразования поясов.
func FormatDate(t time.Time, pattern string) string {
	var b strings.Builder

	for i := 0; i < len(pattern); {
		switch {
		case strings.HasPrefix(pattern[i:], "yyyy"):
			b.WriteString(t.Format("2006"))
			i += 4
		case strings.HasPrefix(pattern[i:], "MMMM"):
			b.WriteString(monthNames[int(t.Month())-1])
			i += 4
		case strings.HasPrefix(pattern[i:], "MM"):
			b.WriteString(t.Format("01"))
			i += 2
		case strings.HasPrefix(pattern[i:], "EEEE"):
			b.WriteString(DayOfWeekName(t))
			i += 4
		case strings.HasPrefix(pattern[i:], "dd"):
			b.WriteString(t.Format("02"))
			i += 2
		case pattern[i] == 'd':
			b.WriteString(t.Format("2"))
			i++
		default:
			b.WriteByte(pattern[i])
			i++
		}
	}

	return b.String()
}

// DaysBetweenInclusive считает календарные дни в отрезке [from, to]
// включительно. Для to раньше from возвращает ErrInvalidRange.
func DaysBetweenInclusive(from, to time.Time) (int, error) {
	start := midnight(from)
	end := midnight(to)

	if end.Before(start) {
		return 0, ErrInvalidRange
	}

	return int(end.Sub(start).Hours()/24) + 1, nil
}

// DaysInMonth возвращает номер последнего дня месяца (month 1-12).
func DaysInMonth(year, month int) int {
	// День ноль следующего месяца равен последнему дню текущего.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayOfWeekName возвращает английское имя дня недели в воскресной
// индексации, как его показывает календарь.
func DayOfWeekName(t time.Time) string {
	return dayNames[t.Weekday()]
}

// MondayIndex возвращает позицию дня в понедельничном порядке weekly-шаблона.
func MondayIndex(t time.Time) int {
	return mondayFirst[t.Weekday()]
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
