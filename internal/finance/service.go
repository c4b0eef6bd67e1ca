package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	appErrors "github.com/fatali-fataliyev/finance_graphql/customErrors"
	"github.com/fatali-fataliyev/finance_graphql/internal/contextutil"
	"github.com/fatali-fataliyev/finance_graphql/logging"
	"github.com/google/uuid"
)

const (
	MAX_DESCRIPTION_LENGTH = 1000
	MAX_CURRENCY_LENGTH    = 16
	MAX_CATEGORY_LENGTH    = 255
	MAX_EMAIL_LENGTH       = 255
)

type FinanceTracker struct {
	storage     Storage
	StorageType string
	now         func() time.Time
}

func NewFinanceTracker(s Storage) *FinanceTracker {
	return &FinanceTracker{
		storage:     s,
		StorageType: s.GetStorageType(),
		now:         time.Now,
	}
}

// Storage lookups that find nothing return a nil record and a nil error.
// Listing methods return records newest first.
type Storage interface {
	SaveUser(ctx context.Context, user User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserById(ctx context.Context, userId string) (*User, error)
	UpdateUserCurrency(ctx context.Context, userId string, currency string) error
	SaveEarnings(ctx context.Context, earnings Earnings) error
	GetEarnings(ctx context.Context, userId string, period DateRange) ([]Earnings, error)
	GetEarningsById(ctx context.Context, earningsId string) (*Earnings, error)
	DeleteEarnings(ctx context.Context, earningsId string) error
	SaveExpenses(ctx context.Context, expenses Expenses) error
	GetExpenses(ctx context.Context, userId string, period DateRange) ([]Expenses, error)
	GetExpensesById(ctx context.Context, expensesId string) (*Expenses, error)
	DeleteExpenses(ctx context.Context, expensesId string) error
	GetStorageType() string
}

func (ft *FinanceTracker) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	user, err := ft.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (ft *FinanceTracker) SaveUser(ctx context.Context, req UserRequest) (*User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, appErrors.ErrorResponse{
			Code:    appErrors.ErrInvalidInput,
			Message: "Email cannot be empty!",
		}
	}
	if len(email) > MAX_EMAIL_LENGTH {
		return nil, appErrors.ErrorResponse{
			Code:    appErrors.ErrInvalidInput,
			Message: fmt.Sprintf("Email so long, maximum length is %d", MAX_EMAIL_LENGTH),
		}
	}

	existingUser, err := ft.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if existingUser != nil {
		return nil, appErrors.ErrorResponse{
			Code:    appErrors.ErrDuplicateUser,
			Message: "User with this email already exists",
		}
	}

	user := User{
		ID:                uuid.New().String(),
		GoogleID:          req.GoogleID,
		Name:              req.Name,
		Email:             email,
		PreferredCurrency: req.PreferredCurrency,
	}

	if err := ft.storage.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (ft *FinanceTracker) UpdateUser(ctx context.Context, req UpdateUserRequest) (*User, error) {
	if len(req.PreferredCurrency) > MAX_CURRENCY_LENGTH {
		return nil, appErrors.ErrorResponse{
			Code:    appErrors.ErrInvalidInput,
			Message: fmt.Sprintf("Currency so long, maximum length is %d", MAX_CURRENCY_LENGTH),
		}
	}

	user, err := ft.storage.GetUserById(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	if user == nil {
		return nil, appErrors.ErrorResponse{
			Code:    appErrors.ErrNotFound,
			Message: "User not found",
		}
	}

	if err := ft.storage.UpdateUserCurrency(ctx, req.ID, req.PreferredCurrency); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.PreferredCurrency = req.PreferredCurrency
	return user, nil
}

func (ft *FinanceTracker) GetEarnings(ctx context.Context, userId string) ([]Earnings, error) {
	earnings, err := ft.storage.GetEarnings(ctx, userId, DateRange{})
	if err != nil {
		return nil, fmt.Errorf("failed to get earnings: %w", err)
	}
	return earnings, nil
}

func (ft *FinanceTracker) GetExpenses(ctx context.Context, userId string) ([]Expenses, error) {
	expenses, err := ft.storage.GetExpenses(ctx, userId, DateRange{})
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	return expenses, nil
}

func (ft *FinanceTracker) GetMonthlyEarnings(ctx context.Context, month string, userId string) ([]Earnings, error) {
	period, err := MonthDateRange(month, ft.now())
	if err != nil {
		return nil, err
	}
	earnings, err := ft.storage.GetEarnings(ctx, userId, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly earnings: %w", err)
	}
	return earnings, nil
}

func (ft *FinanceTracker) GetMonthlyExpenses(ctx context.Context, month string, userId string) ([]Expenses, error) {
	period, err := MonthDateRange(month, ft.now())
	if err != nil {
		return nil, err
	}
	expenses, err := ft.storage.GetExpenses(ctx, userId, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly expenses: %w", err)
	}
	return expenses, nil
}

// GetSummary covers records dated from January 1st of the current year onwards.
// The currency label is echoed back as given; amounts are not converted.
func (ft *FinanceTracker) GetSummary(ctx context.Context, userId string, currency string) (*Summary, error) {
	now := ft.now()
	period := DateRange{From: YearStart(now)}

	earnings, err := ft.storage.GetEarnings(ctx, userId, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get earnings for summary: %w", err)
	}
	expenses, err := ft.storage.GetExpenses(ctx, userId, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses for summary: %w", err)
	}

	totalEarnings := sumEarnings(earnings)
	totalExpenses := sumExpenses(expenses)

	logging.Logger.Debugf("[TraceID=%s] | summary for user %s: %d earnings, %d expenses",
		contextutil.TraceIDFromContext(ctx), userId, len(earnings), len(expenses))

	return &Summary{
		TotalEarnings:    totalEarnings.InexactFloat64(),
		TotalExpenses:    totalExpenses.InexactFloat64(),
		NetAmount:        totalEarnings.Sub(totalExpenses).InexactFloat64(),
		Currency:         currency,
		MonthlyBreakdown: ComputeMonthlyBreakdownIn(earnings, expenses, now.Location()),
	}, nil
}

// GetTotalBalance is the user's lifetime earnings minus expenses.
func (ft *FinanceTracker) GetTotalBalance(ctx context.Context, userId string) (float64, error) {
	earnings, err := ft.storage.GetEarnings(ctx, userId, DateRange{})
	if err != nil {
		return 0, fmt.Errorf("failed to get earnings for balance: %w", err)
	}
	expenses, err := ft.storage.GetExpenses(ctx, userId, DateRange{})
	if err != nil {
		return 0, fmt.Errorf("failed to get expenses for balance: %w", err)
	}
	return sumEarnings(earnings).Sub(sumExpenses(expenses)).InexactFloat64(), nil
}

func (ft *FinanceTracker) SaveEarnings(ctx context.Context, req EarningsRequest) (*Earnings, error) {
	earnings, err := ft.buildEarnings(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create earnings: %w", err)
	}
	if err := ft.storage.SaveEarnings(ctx, earnings); err != nil {
		return nil, fmt.Errorf("failed to create earnings: %w", err)
	}
	return &earnings, nil
}

func (ft *FinanceTracker) buildEarnings(req EarningsRequest) (Earnings, error) {
	normalized, err := NormalizeEarnings(req)
	if err != nil {
		return Earnings{}, err
	}
	if err := ft.validateRecord(normalized.UserID, normalized.Description, normalized.Currency); err != nil {
		return Earnings{}, err
	}

	return Earnings{
		ID:          uuid.New().String(),
		Description: normalized.Description,
		Amount:      amountOrZero(normalized.Amount),
		Currency:    normalized.Currency,
		Date:        ft.dateOrNow(normalized.Date),
		UserID:      normalized.UserID,
	}, nil
}

func (ft *FinanceTracker) SaveExpenses(ctx context.Context, req ExpensesRequest) (*Expenses, error) {
	expenses, err := ft.buildExpenses(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create expenses: %w", err)
	}
	if err := ft.storage.SaveExpenses(ctx, expenses); err != nil {
		return nil, fmt.Errorf("failed to create expenses: %w", err)
	}
	return &expenses, nil
}

func (ft *FinanceTracker) buildExpenses(req ExpensesRequest) (Expenses, error) {
	normalized, err := NormalizeExpenses(req)
	if err != nil {
		return Expenses{}, err
	}
	if err := ft.validateRecord(normalized.UserID, normalized.Description, normalized.Currency); err != nil {
		return Expenses{}, err
	}
	if len(normalized.Category) > MAX_CATEGORY_LENGTH {
		return Expenses{}, appErrors.ErrorResponse{
			Code:    appErrors.ErrInvalidInput,
			Message: fmt.Sprintf("Category so long, maximum length is %d", MAX_CATEGORY_LENGTH),
		}
	}

	return Expenses{
		ID:          uuid.New().String(),
		Description: normalized.Description,
		Category:    normalized.Category,
		Amount:      amountOrZero(normalized.Amount),
		Currency:    normalized.Currency,
		Date:        ft.dateOrNow(normalized.Date),
		UserID:      normalized.UserID,
		IsFixed:     normalized.IsFixed,
	}, nil
}

func (ft *FinanceTracker) validateRecord(userId string, description string, currency string) error {
	if strings.TrimSpace(userId) == "" {
		return appErrors.ErrorResponse{
			Code:    appErrors.ErrInvalidInput,
			Message: "User id cannot be empty!",
		}
	}
	if len(description) > MAX_DESCRIPTION_LENGTH {
		return appErrors.ErrorResponse{
			Code:    appErrors.ErrInvalidInput,
			Message: fmt.Sprintf("Description so long, maximum length is %d", MAX_DESCRIPTION_LENGTH),
		}
	}
	if len(currency) > MAX_CURRENCY_LENGTH {
		return appErrors.ErrorResponse{
			Code:    appErrors.ErrInvalidInput,
			Message: fmt.Sprintf("Currency so long, maximum length is %d", MAX_CURRENCY_LENGTH),
		}
	}
	return nil
}

func (ft *FinanceTracker) DeleteEarnings(ctx context.Context, earningsId string) error {
	earnings, err := ft.storage.GetEarningsById(ctx, earningsId)
	if err != nil {
		return fmt.Errorf("failed to get earnings by id: %w", err)
	}
	if earnings == nil {
		return appErrors.ErrorResponse{
			Code:    appErrors.ErrNotFound,
			Message: "Earnings not found",
		}
	}
	if err := ft.storage.DeleteEarnings(ctx, earningsId); err != nil {
		return fmt.Errorf("failed to delete earnings: %w", err)
	}
	return nil
}

func (ft *FinanceTracker) DeleteExpenses(ctx context.Context, expensesId string) error {
	expenses, err := ft.storage.GetExpensesById(ctx, expensesId)
	if err != nil {
		return fmt.Errorf("failed to get expenses by id: %w", err)
	}
	if expenses == nil {
		return appErrors.ErrorResponse{
			Code:    appErrors.ErrNotFound,
			Message: "Expenses not found",
		}
	}
	if err := ft.storage.DeleteExpenses(ctx, expensesId); err != nil {
		return fmt.Errorf("failed to delete expenses: %w", err)
	}
	return nil
}

func amountOrZero(v any) float64 {
	if amount, ok := v.(float64); ok {
		return amount
	}
	return 0
}

func (ft *FinanceTracker) dateOrNow(v any) time.Time {
	if date, ok := v.(time.Time); ok {
		return date.UTC()
	}
	return ft.now().UTC()
}
