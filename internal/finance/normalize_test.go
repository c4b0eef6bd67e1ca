package finance

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	appErrors "github.com/fatali-fataliyev/finance_graphql/customErrors"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	already := time.Date(2024, time.May, 3, 15, 4, 5, 0, time.FixedZone("X", 3600))

	tests := []struct {
		name  string
		input any
		want  time.Time
	}{
		{name: "date only is utc midnight", input: "2025-08-27", want: time.Date(2025, time.August, 27, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", input: "2024-02-29", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{name: "iso with z", input: "2025-08-27T10:30:00Z", want: time.Date(2025, time.August, 27, 10, 30, 0, 0, time.UTC)},
		{name: "iso with millis", input: "2025-08-27T10:30:00.250Z", want: time.Date(2025, time.August, 27, 10, 30, 0, int(250*time.Millisecond), time.UTC)},
		{name: "iso with offset", input: "2025-08-27T12:30:00+02:00", want: time.Date(2025, time.August, 27, 10, 30, 0, 0, time.UTC)},
		{name: "iso without zone", input: "2025-08-27T10:30:00", want: time.Date(2025, time.August, 27, 10, 30, 0, 0, time.UTC)},
		{name: "iso without seconds", input: "2025-08-27T10:30", want: time.Date(2025, time.August, 27, 10, 30, 0, 0, time.UTC)},
		{name: "space separated", input: "2025-08-27 10:30:00", want: time.Date(2025, time.August, 27, 10, 30, 0, 0, time.UTC)},
		{name: "year and month", input: "2025-08", want: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{name: "year only", input: "2025", want: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{name: "timestamp passes through", input: already, want: already},
		{name: "timestamp pointer", input: &already, want: already},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			require.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseDateDateOnlyKeepsUTC(t *testing.T) {
	got, err := ParseDate("2023-12-31")
	require.NoError(t, err)
	require.Equal(t, time.UTC, got.Location())
	require.Equal(t, 0, got.Hour())
}

func TestParseDateInvalid(t *testing.T) {
	inputs := []any{
		"",
		"not a date",
		"2025-13-01",
		"2025-02-30",
		"2023-02-29",
		"27/08/2025",
		"2025-08-27T25:00:00Z",
		"2025-8-27",
		"2025-13",
		"25",
		42,
		true,
		nil,
		(*time.Time)(nil),
	}

	for _, input := range inputs {
		_, err := ParseDate(input)
		require.Error(t, err, "input %v", input)
		require.Equal(t, appErrors.ErrInvalidDate, appErrors.CodeOf(err), "input %v", input)
	}
}

func TestParseDateErrorNamesInput(t *testing.T) {
	_, err := ParseDate("yesterday")
	require.Error(t, err)
	require.Contains(t, err.Error(), "yesterday")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "float", input: 12.5, want: 12.5},
		{name: "float32", input: float32(0.5), want: 0.5},
		{name: "int", input: 7, want: 7},
		{name: "int64", input: int64(-3), want: -3},
		{name: "uint", input: uint(9), want: 9},
		{name: "numeric string", input: "100.25", want: 100.25},
		{name: "padded string", input: "  42 ", want: 42},
		{name: "exponent string", input: "1e3", want: 1000},
		{name: "negative string", input: "-15", want: -15},
		{name: "json number", input: json.Number("3.75"), want: 3.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmountInvalid(t *testing.T) {
	inputs := []any{
		"", "abc", "12abc", "NaN", math.NaN(), json.Number("x"), true, []int{1},
		"Infinity", "Inf", "-Inf", "1e400", math.Inf(1), math.Inf(-1), json.Number("1e400"),
	}

	for _, input := range inputs {
		_, err := ParseAmount(input)
		require.Error(t, err, "input %v", input)
		require.Equal(t, appErrors.ErrInvalidAmount, appErrors.CodeOf(err), "input %v", input)
	}
}

func TestNormalizeEarnings(t *testing.T) {
	req := EarningsRequest{
		Description: "salary",
		Amount:      "2500.50",
		Currency:    "EUR",
		Date:        "2025-03-01",
		UserID:      "user-1",
	}

	got, err := NormalizeEarnings(req)
	require.NoError(t, err)
	require.Equal(t, 2500.50, got.Amount)
	require.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), got.Date)
	require.Equal(t, "salary", got.Description)
	require.Equal(t, "EUR", got.Currency)
	require.Equal(t, "user-1", got.UserID)

	// input is not modified
	require.Equal(t, "2500.50", req.Amount)
}

func TestNormalizeLeavesAbsentFieldsAbsent(t *testing.T) {
	got, err := NormalizeExpenses(ExpensesRequest{Description: "rent", Date: "", IsFixed: true})
	require.NoError(t, err)
	require.Nil(t, got.Date)
	require.Nil(t, got.Amount)
	require.True(t, got.IsFixed)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	once, err := NormalizeExpenses(ExpensesRequest{
		Description: "groceries",
		Category:    "food",
		Amount:      "64.11",
		Date:        "2025-06-14T09:00:00Z",
		UserID:      "user-1",
	})
	require.NoError(t, err)

	twice, err := NormalizeExpenses(once)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestNormalizeFailures(t *testing.T) {
	_, err := NormalizeEarnings(EarningsRequest{Amount: 10.0, Date: "31-12-2025"})
	require.Equal(t, appErrors.ErrInvalidDate, appErrors.CodeOf(err))

	_, err = NormalizeExpenses(ExpensesRequest{Amount: "ten", Date: "2025-12-31"})
	require.Equal(t, appErrors.ErrInvalidAmount, appErrors.CodeOf(err))
}
