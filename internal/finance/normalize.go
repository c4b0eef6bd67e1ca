package finance

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/fatali-fataliyev/finance_graphql/customErrors"
)

var dateOnlyRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Layouts tried, in order, for strings that are not plain YYYY-MM-DD dates.
// Layouts without a zone are read as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01",
	"2006",
}

// ParseDate converts a time.Time, a YYYY-MM-DD string or an ISO-8601 string into a timestamp.
func ParseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case *time.Time:
		if d != nil {
			return *d, nil
		}
	case string:
		s := strings.TrimSpace(d)
		if dateOnlyRegex.MatchString(s) {
			t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
			if err != nil {
				return time.Time{}, invalidDateFormat(d)
			}
			return t, nil
		}
		for _, layout := range isoLayouts {
			if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return t, nil
			}
		}
		return time.Time{}, invalidDateFormat(d)
	}

	return time.Time{}, appErrors.ErrorResponse{
		Code:    appErrors.ErrInvalidDate,
		Message: fmt.Sprintf("Invalid date input: %v", v),
	}
}

func invalidDateFormat(input string) error {
	return appErrors.ErrorResponse{
		Code:    appErrors.ErrInvalidDate,
		Message: fmt.Sprintf("Invalid date format: %s. Expected ISO-8601 DateTime or YYYY-MM-DD format.", input),
	}
}

// ParseAmount coerces any Go number, json.Number or numeric string into a finite float64.
func ParseAmount(v any) (float64, error) {
	var (
		amount float64
		err    error
	)

	switch a := v.(type) {
	case float64:
		amount = a
	case float32:
		amount = float64(a)
	case int:
		amount = float64(a)
	case int32:
		amount = float64(a)
	case int64:
		amount = float64(a)
	case uint:
		amount = float64(a)
	case uint32:
		amount = float64(a)
	case uint64:
		amount = float64(a)
	case json.Number:
		amount, err = a.Float64()
	case string:
		amount, err = strconv.ParseFloat(strings.TrimSpace(a), 64)
	default:
		err = fmt.Errorf("unsupported type %T", v)
	}

	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, appErrors.ErrorResponse{
			Code:    appErrors.ErrInvalidAmount,
			Message: fmt.Sprintf("Amount must be a valid number, got: %v", v),
		}
	}
	return amount, nil
}

// NormalizeEarnings returns a copy of req with Date as time.Time and Amount as float64.
// Absent fields stay absent; an empty date string counts as absent.
func NormalizeEarnings(req EarningsRequest) (EarningsRequest, error) {
	date, amount, err := normalizeDateAmount(req.Date, req.Amount)
	if err != nil {
		return EarningsRequest{}, err
	}
	req.Date, req.Amount = date, amount
	return req, nil
}

// NormalizeExpenses is NormalizeEarnings for expenses.
func NormalizeExpenses(req ExpensesRequest) (ExpensesRequest, error) {
	date, amount, err := normalizeDateAmount(req.Date, req.Amount)
	if err != nil {
		return ExpensesRequest{}, err
	}
	req.Date, req.Amount = date, amount
	return req, nil
}

func normalizeDateAmount(date any, amount any) (any, any, error) {
	if s, ok := date.(string); ok && s == "" {
		date = nil
	}

	if date != nil {
		parsed, err := ParseDate(date)
		if err != nil {
			return nil, nil, err
		}
		date = parsed
	}

	if amount != nil {
		parsed, err := ParseAmount(amount)
		if err != nil {
			return nil, nil, err
		}
		amount = parsed
	}

	return date, amount, nil
}
