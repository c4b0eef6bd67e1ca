package storage

import (
	"context"
	"os"
	"testing"
	"time"

	appErrors "github.com/fatali-fataliyev/finance_graphql/customErrors"
	"github.com/fatali-fataliyev/finance_graphql/internal/config"
	"github.com/fatali-fataliyev/finance_graphql/internal/finance"
	"github.com/stretchr/testify/require"
)

var _ finance.Storage = (*MySQLStorage)(nil)

func TestBuildDSNFromFields(t *testing.T) {
	dsn, err := BuildDSN(&config.Config{DBUser: "root", DBPass: "secret", DBHost: "db", DBPort: "3306", DBName: "finance"})
	require.NoError(t, err)
	require.Equal(t, "root", dsn.User)
	require.Equal(t, "secret", dsn.Passwd)
	require.Equal(t, "tcp", dsn.Net)
	require.Equal(t, "db:3306", dsn.Addr)
	require.Equal(t, "finance", dsn.DBName)
	require.True(t, dsn.ParseTime)
	require.Equal(t, time.UTC, dsn.Loc)
	require.Contains(t, dsn.FormatDSN(), "parseTime=true")
}

func TestBuildDSNFromFullDSN(t *testing.T) {
	dsn, err := BuildDSN(&config.Config{FullDSN: "app:pw@tcp(mysql.local:3307)/ledger", DBName: "ignored"})
	require.NoError(t, err)
	require.Equal(t, "app", dsn.User)
	require.Equal(t, "mysql.local:3307", dsn.Addr)
	require.Equal(t, "ledger", dsn.DBName)
	require.True(t, dsn.ParseTime)

	_, err = BuildDSN(&config.Config{FullDSN: "not a dsn"})
	require.Error(t, err)
}

// setupTestDB needs a reachable MySQL server; MYSQL_TEST_DSN points at a throwaway database.
func setupTestDB(t *testing.T) *MySQLStorage {
	fullDsn := os.Getenv("MYSQL_TEST_DSN")
	if fullDsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}

	db, err := Init(&config.Config{FullDSN: fullDsn})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for _, table := range []string{"expenses", "earnings", "users"} {
		_, err := db.Exec("DELETE FROM " + table)
		require.NoError(t, err)
	}
	return NewMySQLStorage(db)
}

func TestMySQLStorageRoundTrip(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	user := finance.User{ID: "11111111-1111-1111-1111-111111111111", Name: "Jane", Email: "jane@example.com", PreferredCurrency: "USD"}
	require.NoError(t, store.SaveUser(ctx, user))

	err := store.SaveUser(ctx, finance.User{ID: "22222222-2222-2222-2222-222222222222", Email: "jane@example.com"})
	require.Equal(t, appErrors.ErrDuplicateUser, appErrors.CodeOf(err))

	fetched, err := store.GetUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, user, *fetched)

	require.NoError(t, store.UpdateUserCurrency(ctx, user.ID, "EUR"))
	fetched, err = store.GetUserById(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "EUR", fetched.PreferredCurrency)

	missing, err := store.GetUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)

	feb := finance.Earnings{ID: "e-feb", Description: "salary", Amount: 3200.5, Currency: "USD", Date: time.Date(2025, time.February, 28, 23, 59, 59, int(999*time.Millisecond), time.UTC), UserID: user.ID}
	mar := finance.Earnings{ID: "e-mar", Amount: 100, Date: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), UserID: user.ID}
	require.NoError(t, store.SaveEarnings(ctx, feb))
	require.NoError(t, store.SaveEarnings(ctx, mar))

	err = store.SaveEarnings(ctx, finance.Earnings{ID: "e-orphan", Date: time.Now(), UserID: "no-such-user"})
	require.Equal(t, appErrors.ErrInvalidInput, appErrors.CodeOf(err))

	all, err := store.GetEarnings(ctx, user.ID, finance.DateRange{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "e-mar", all[0].ID)
	require.Equal(t, feb, all[1])

	period, err := finance.MonthDateRange("2", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	inFeb, err := store.GetEarnings(ctx, user.ID, period)
	require.NoError(t, err)
	require.Len(t, inFeb, 1)
	require.Equal(t, "e-feb", inFeb[0].ID)

	rent := finance.Expenses{ID: "x-1", Description: "rent", Category: "Housing", Amount: 1500, Currency: "USD", Date: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), UserID: user.ID, IsFixed: true}
	require.NoError(t, store.SaveExpenses(ctx, rent))

	gotRent, err := store.GetExpensesById(ctx, "x-1")
	require.NoError(t, err)
	require.Equal(t, rent, *gotRent)

	require.NoError(t, store.DeleteExpenses(ctx, "x-1"))
	err = store.DeleteExpenses(ctx, "x-1")
	require.Equal(t, appErrors.ErrNotFound, appErrors.CodeOf(err))

	require.NoError(t, store.DeleteEarnings(ctx, "e-feb"))
	gone, err := store.GetEarningsById(ctx, "e-feb")
	require.NoError(t, err)
	require.Nil(t, gone)
}
