package finance

import (
	"time"
)

// REQUESTS START:
type UserRequest struct {
	GoogleID          string
	Name              string
	Email             string
	PreferredCurrency string
}

type UpdateUserRequest struct {
	ID                string
	PreferredCurrency string
}

// EarningsRequest carries loosely typed Date and Amount values; a nil field is absent.
// Date accepts time.Time or a string, Amount accepts any number or a numeric string.
type EarningsRequest struct {
	Description string
	Amount      any
	Currency    string
	Date        any
	UserID      string
}

type ExpensesRequest struct {
	Description string
	Category    string
	Amount      any
	Currency    string
	Date        any
	UserID      string
	IsFixed     bool
}

// REQUESTS END:

// MODELS:

type User struct {
	ID                string
	GoogleID          string
	Name              string
	Email             string
	PreferredCurrency string
}

type Earnings struct {
	ID          string
	Description string
	Amount      float64
	Currency    string
	Date        time.Time
	UserID      string
}

type Expenses struct {
	ID          string
	Description string
	Category    string
	Amount      float64
	Currency    string
	Date        time.Time
	UserID      string
	IsFixed     bool
}

// DateRange is inclusive on both ends; a zero bound means unbounded.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// RESPONSES:

type MonthlyBreakdown struct {
	Month    string
	Earnings float64
	Expenses float64
	Net      float64
	Currency string
}

type Summary struct {
	TotalEarnings    float64
	TotalExpenses    float64
	NetAmount        float64
	Currency         string
	MonthlyBreakdown []MonthlyBreakdown
}
