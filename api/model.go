package api

import (
	"errors"
	"time"

	appErrors "github.com/fatali-fataliyev/finance_graphql/customErrors"
	"github.com/fatali-fataliyev/finance_graphql/internal/finance"
)

// ISO_DATE_LAYOUT renders dates the way JavaScript's toISOString does.
const ISO_DATE_LAYOUT = "2006-01-02T15:04:05.000Z07:00"

type GraphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	StorageType string `json:"storageType"`
}

type UserItem struct {
	ID                string `json:"id"`
	GoogleID          string `json:"googleId"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	PreferredCurrency string `json:"preferredCurrency"`
}

type EarningsItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Date        string  `json:"date"`
	UserID      string  `json:"userId"`
}

type ExpensesItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Date        string  `json:"date"`
	UserID      string  `json:"userId"`
	IsFixed     bool    `json:"isFixed"`
}

type MonthlyBreakdownItem struct {
	Month    string  `json:"month"`
	Earnings float64 `json:"earnings"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
	Currency string  `json:"currency"`
}

type SummaryItem struct {
	TotalEarnings    float64                `json:"totalEarnings"`
	TotalExpenses    float64                `json:"totalExpenses"`
	NetAmount        float64                `json:"netAmount"`
	Currency         string                 `json:"currency"`
	MonthlyBreakdown []MonthlyBreakdownItem `json:"monthlyBreakdown"`
}

func formatDate(t time.Time) string {
	return t.UTC().Format(ISO_DATE_LAYOUT)
}

func UserToHttp(user finance.User) UserItem {
	return UserItem{
		ID:                user.ID,
		GoogleID:          user.GoogleID,
		Name:              user.Name,
		Email:             user.Email,
		PreferredCurrency: user.PreferredCurrency,
	}
}

func EarningsToHttp(earnings finance.Earnings) EarningsItem {
	return EarningsItem{
		ID:          earnings.ID,
		Description: earnings.Description,
		Amount:      earnings.Amount,
		Currency:    earnings.Currency,
		Date:        formatDate(earnings.Date),
		UserID:      earnings.UserID,
	}
}

func ExpensesToHttp(expenses finance.Expenses) ExpensesItem {
	return ExpensesItem{
		ID:          expenses.ID,
		Description: expenses.Description,
		Category:    expenses.Category,
		Amount:      expenses.Amount,
		Currency:    expenses.Currency,
		Date:        formatDate(expenses.Date),
		UserID:      expenses.UserID,
		IsFixed:     expenses.IsFixed,
	}
}

func SummaryToHttp(summary finance.Summary) SummaryItem {
	breakdown := make([]MonthlyBreakdownItem, 0, len(summary.MonthlyBreakdown))
	for _, month := range summary.MonthlyBreakdown {
		breakdown = append(breakdown, MonthlyBreakdownItem{
			Month:    month.Month,
			Earnings: month.Earnings,
			Expenses: month.Expenses,
			Net:      month.Net,
			Currency: month.Currency,
		})
	}
	return SummaryItem{
		TotalEarnings:    summary.TotalEarnings,
		TotalExpenses:    summary.TotalExpenses,
		NetAmount:        summary.NetAmount,
		Currency:         summary.Currency,
		MonthlyBreakdown: breakdown,
	}
}

// graphQLError exposes the application error code under errors[].extensions.
// The engine only looks at the error a resolver returns, not at wrapped causes.
type graphQLError struct {
	err error
}

func (e graphQLError) Error() string {
	return e.err.Error()
}

func (e graphQLError) Unwrap() error {
	return e.err
}

func (e graphQLError) Extensions() map[string]interface{} {
	var appErr appErrors.ErrorResponse
	if errors.As(e.err, &appErr) {
		return appErr.Extensions()
	}
	return map[string]interface{}{"code": appErrors.ErrStoreFailure}
}

func toGraphQLError(err error) error {
	if err == nil {
		return nil
	}
	return graphQLError{err: err}
}
