package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/fatali-fataliyev/finance_graphql/internal/finance"
)

type InMemoryStorage struct {
	mu       sync.RWMutex
	users    []finance.User
	earnings []finance.Earnings
	expenses []finance.Expenses
}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{}
}

func (inMem *InMemoryStorage) GetStorageType() string {
	return "inmemory"
}

func (inMem *InMemoryStorage) SaveUser(ctx context.Context, user finance.User) error {
	inMem.mu.Lock()
	defer inMem.mu.Unlock()
	inMem.users = append(inMem.users, user)
	return nil
}

func (inMem *InMemoryStorage) GetUserByEmail(ctx context.Context, email string) (*finance.User, error) {
	inMem.mu.RLock()
	defer inMem.mu.RUnlock()
	for _, user := range inMem.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (inMem *InMemoryStorage) GetUserById(ctx context.Context, userId string) (*finance.User, error) {
	inMem.mu.RLock()
	defer inMem.mu.RUnlock()
	for _, user := range inMem.users {
		if user.ID == userId {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (inMem *InMemoryStorage) UpdateUserCurrency(ctx context.Context, userId string, currency string) error {
	inMem.mu.Lock()
	defer inMem.mu.Unlock()
	for i := range inMem.users {
		if inMem.users[i].ID == userId {
			inMem.users[i].PreferredCurrency = currency
			return nil
		}
	}
	return notFound("User not found")
}

func (inMem *InMemoryStorage) SaveEarnings(ctx context.Context, earnings finance.Earnings) error {
	inMem.mu.Lock()
	defer inMem.mu.Unlock()
	inMem.earnings = append(inMem.earnings, earnings)
	return nil
}

func (inMem *InMemoryStorage) GetEarnings(ctx context.Context, userId string, period finance.DateRange) ([]finance.Earnings, error) {
	inMem.mu.RLock()
	defer inMem.mu.RUnlock()
	result := []finance.Earnings{}
	for _, earnings := range inMem.earnings {
		if earnings.UserID == userId && period.Contains(earnings.Date) {
			result = append(result, earnings)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (inMem *InMemoryStorage) GetEarningsById(ctx context.Context, earningsId string) (*finance.Earnings, error) {
	inMem.mu.RLock()
	defer inMem.mu.RUnlock()
	for _, earnings := range inMem.earnings {
		if earnings.ID == earningsId {
			found := earnings
			return &found, nil
		}
	}
	return nil, nil
}

func (inMem *InMemoryStorage) DeleteEarnings(ctx context.Context, earningsId string) error {
	inMem.mu.Lock()
	defer inMem.mu.Unlock()
	for i, earnings := range inMem.earnings {
		if earnings.ID == earningsId {
			inMem.earnings = append(inMem.earnings[:i], inMem.earnings[i+1:]...)
			return nil
		}
	}
	return notFound("Earnings not found")
}

func (inMem *InMemoryStorage) SaveExpenses(ctx context.Context, expenses finance.Expenses) error {
	inMem.mu.Lock()
	defer inMem.mu.Unlock()
	inMem.expenses = append(inMem.expenses, expenses)
	return nil
}

func (inMem *InMemoryStorage) GetExpenses(ctx context.Context, userId string, period finance.DateRange) ([]finance.Expenses, error) {
	inMem.mu.RLock()
	defer inMem.mu.RUnlock()
	result := []finance.Expenses{}
	for _, expenses := range inMem.expenses {
		if expenses.UserID == userId && period.Contains(expenses.Date) {
			result = append(result, expenses)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (inMem *InMemoryStorage) GetExpensesById(ctx context.Context, expensesId string) (*finance.Expenses, error) {
	inMem.mu.RLock()
	defer inMem.mu.RUnlock()
	for _, expenses := range inMem.expenses {
		if expenses.ID == expensesId {
			found := expenses
			return &found, nil
		}
	}
	return nil, nil
}

func (inMem *InMemoryStorage) DeleteExpenses(ctx context.Context, expensesId string) error {
	inMem.mu.Lock()
	defer inMem.mu.Unlock()
	for i, expenses := range inMem.expenses {
		if expenses.ID == expensesId {
			inMem.expenses = append(inMem.expenses[:i], inMem.expenses[i+1:]...)
			return nil
		}
	}
	return notFound("Expenses not found")
}
