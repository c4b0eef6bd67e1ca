package finance

import (
	"testing"
	"time"

	appErrors "github.com/fatali-fataliyev/finance_graphql/customErrors"
	"github.com/stretchr/testify/require"
)

func TestMonthDateRangeFebruary(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		wantEnd time.Time
	}{
		{
			name:    "leap year",
			now:     time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC),
			wantEnd: time.Date(2024, time.February, 29, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:    "non leap year",
			now:     time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC),
			wantEnd: time.Date(2025, time.February, 28, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthDateRange("02", tt.now)
			require.NoError(t, err)
			require.Equal(t, time.Date(tt.now.Year(), time.February, 1, 0, 0, 0, 0, time.UTC), got.From)
			require.Equal(t, tt.wantEnd, got.To)
		})
	}
}

func TestMonthDateRangeLastDays(t *testing.T) {
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	lastDays := map[string]int{"1": 31, "3": 31, "4": 30, "06": 30, "7": 31, "9": 30, "11": 30, "12": 31}

	for month, day := range lastDays {
		got, err := MonthDateRange(month, now)
		require.NoError(t, err, month)
		require.Equal(t, 1, got.From.Day(), month)
		require.Equal(t, day, got.To.Day(), month)
		require.Equal(t, got.From.Month(), got.To.Month(), month)
		require.Equal(t, 2025, got.To.Year(), month)
	}
}

func TestMonthDateRangeUsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+4", 4*3600)
	got, err := MonthDateRange("5", time.Date(2025, time.July, 1, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	require.Equal(t, loc, got.From.Location())
	require.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, loc), got.From)
}

func TestMonthDateRangeRollsOver(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	got, err := MonthDateRange("13", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), got.From)
	require.Equal(t, time.Date(2026, time.January, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC), got.To)

	got, err = MonthDateRange("0", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), got.From)
	require.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC), got.To)
}

func TestMonthDateRangeInvalid(t *testing.T) {
	for _, month := range []string{"", "march", "1.5"} {
		_, err := MonthDateRange(month, time.Now())
		require.Error(t, err, month)
		require.Equal(t, appErrors.ErrInvalidInput, appErrors.CodeOf(err), month)
	}
}

func TestDateRangeContains(t *testing.T) {
	r, err := MonthDateRange("3", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.True(t, r.Contains(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	require.True(t, r.Contains(time.Date(2025, time.March, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)))
	require.False(t, r.Contains(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	require.False(t, r.Contains(time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC)))
	require.True(t, DateRange{}.Contains(time.Time{}))
}

func TestYearStart(t *testing.T) {
	require.Equal(t,
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		YearStart(time.Date(2025, time.October, 15, 8, 0, 0, 0, time.UTC)))
}
