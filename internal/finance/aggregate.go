package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type monthBucket struct {
	month    string
	earnings decimal.Decimal
	expenses decimal.Decimal
	currency string
}

// ComputeMonthlyBreakdown groups earnings and expenses by their UTC month name.
// Buckets appear in the order their month is first seen, scanning earnings before expenses,
// and take their currency from the record that created them. The year is not part of the key.
func ComputeMonthlyBreakdown(earnings []Earnings, expenses []Expenses) []MonthlyBreakdown {
	return ComputeMonthlyBreakdownIn(earnings, expenses, time.UTC)
}

// ComputeMonthlyBreakdownIn is ComputeMonthlyBreakdown with months read in loc.
func ComputeMonthlyBreakdownIn(earnings []Earnings, expenses []Expenses, loc *time.Location) []MonthlyBreakdown {
	var buckets []*monthBucket
	index := make(map[string]*monthBucket)

	bucketFor := func(month string, currency string) *monthBucket {
		if b, ok := index[month]; ok {
			return b
		}
		b := &monthBucket{month: month, currency: currency}
		index[month] = b
		buckets = append(buckets, b)
		return b
	}

	for _, e := range earnings {
		b := bucketFor(e.Date.In(loc).Month().String(), e.Currency)
		b.earnings = b.earnings.Add(decimal.NewFromFloat(e.Amount))
	}
	for _, e := range expenses {
		b := bucketFor(e.Date.In(loc).Month().String(), e.Currency)
		b.expenses = b.expenses.Add(decimal.NewFromFloat(e.Amount))
	}

	breakdown := make([]MonthlyBreakdown, 0, len(buckets))
	for _, b := range buckets {
		breakdown = append(breakdown, MonthlyBreakdown{
			Month:    b.month,
			Earnings: b.earnings.InexactFloat64(),
			Expenses: b.expenses.InexactFloat64(),
			Net:      b.earnings.Sub(b.expenses).InexactFloat64(),
			Currency: b.currency,
		})
	}
	return breakdown
}

func sumEarnings(records []Earnings) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(decimal.NewFromFloat(r.Amount))
	}
	return total
}

func sumExpenses(records []Expenses) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(decimal.NewFromFloat(r.Amount))
	}
	return total
}
