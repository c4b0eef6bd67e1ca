package storage

import (
	"database/sql"
	"time"

	appErrors "github.com/fatali-fataliyev/finance_graphql/customErrors"
	"github.com/fatali-fataliyev/finance_graphql/internal/finance"
)

// Rows as they come out of MySQL; optional text columns are nullable.

type dbUser struct {
	ID                string
	GoogleID          sql.NullString
	Name              sql.NullString
	Email             string
	PreferredCurrency sql.NullString
}

func (u dbUser) toUser() finance.User {
	return finance.User{
		ID:                u.ID,
		GoogleID:          u.GoogleID.String,
		Name:              u.Name.String,
		Email:             u.Email,
		PreferredCurrency: u.PreferredCurrency.String,
	}
}

type dbEarnings struct {
	ID          string
	Description sql.NullString
	Amount      float64
	Currency    sql.NullString
	Date        time.Time
	UserID      string
}

func (e dbEarnings) toEarnings() finance.Earnings {
	return finance.Earnings{
		ID:          e.ID,
		Description: e.Description.String,
		Amount:      e.Amount,
		Currency:    e.Currency.String,
		Date:        e.Date.UTC(),
		UserID:      e.UserID,
	}
}

type dbExpenses struct {
	ID          string
	Description sql.NullString
	Category    sql.NullString
	Amount      float64
	Currency    sql.NullString
	Date        time.Time
	UserID      string
	IsFixed     bool
}

func (e dbExpenses) toExpenses() finance.Expenses {
	return finance.Expenses{
		ID:          e.ID,
		Description: e.Description.String,
		Category:    e.Category.String,
		Amount:      e.Amount,
		Currency:    e.Currency.String,
		Date:        e.Date.UTC(),
		UserID:      e.UserID,
		IsFixed:     e.IsFixed,
	}
}

func EmptyToNullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{Valid: true, String: v}
}

func notFound(message string) error {
	return appErrors.ErrorResponse{
		Code:    appErrors.ErrNotFound,
		Message: message,
	}
}

func storeFailure(message string) error {
	return appErrors.ErrorResponse{
		Code:    appErrors.ErrStoreFailure,
		Message: message,
	}
}
