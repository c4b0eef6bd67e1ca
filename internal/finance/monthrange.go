package finance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/fatali-fataliyev/finance_graphql/customErrors"
)

// MonthDateRange returns the first and last instant of the given month (1-12) in now's year and location.
// Months outside 1-12 are not rejected: they roll over the calendar, so "13" is January of the next year.
func MonthDateRange(month string, now time.Time) (DateRange, error) {
	monthNumber, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil {
		return DateRange{}, appErrors.ErrorResponse{
			Code:    appErrors.ErrInvalidInput,
			Message: fmt.Sprintf("Invalid month: %q, expected a month number like 1 or 01.", month),
		}
	}

	year, loc := now.Year(), now.Location()
	startDate := time.Date(year, time.Month(monthNumber), 1, 0, 0, 0, 0, loc)
	// Day 0 of the following month is the last day of this one.
	endDate := time.Date(year, time.Month(monthNumber+1), 0, 23, 59, 59, int(999*time.Millisecond), loc)

	return DateRange{From: startDate, To: endDate}, nil
}

// YearStart is January 1st 00:00 of now's year.
func YearStart(now time.Time) time.Time {
	return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
}
