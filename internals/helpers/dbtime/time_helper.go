// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

var (
	ErrDateRequired = errors.New("date is required")
	ErrInvalidDate  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year must be between 1 and 9999")
)

// Now is replaced in tests.
var Now = time.Now

// Calendar dates are stored as UTC midnight so equality and range filters
// behave the same on every driver.

// ParseDate parses YYYY-MM-DD into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrDateRequired
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Day drops the clock part of t, keeping t's calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ToDate(t time.Time) datatypes.Date { return datatypes.Date(Day(t)) }

func FormatDate(d datatypes.Date) string { return time.Time(d).Format(DateLayout) }

func Today() time.Time { return Day(Now()) }

// MonthRange returns the half-open window [first day of month, first day of next month).
func MonthRange(month, year int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	if year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, ErrInvalidYear
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0), nil
}

// ResolveMonthYear reads ?month= and ?year= values, defaulting blanks to the current month/year.
func ResolveMonthYear(monthRaw, yearRaw string) (int, int, error) {
	now := Now()
	month, year := int(now.Month()), now.Year()

	if s := strings.TrimSpace(monthRaw); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
		}
		month = v
	}
	if s := strings.TrimSpace(yearRaw); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidYear, s)
		}
		year = v
	}
	if _, _, err := MonthRange(month, year); err != nil {
		return 0, 0, err
	}
	return month, year, nil
}
