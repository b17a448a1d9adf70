package ledger

import (
	"context"

	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Summary holds the income and expense totals of a set of transactions.
type Summary struct {
	Income  decimal.Decimal `json:"income" example:"3000"`
	Expense decimal.Decimal `json:"expense" example:"1750"`
}

// Summarize folds transactions into their income and expense totals.
// Transactions of the same month sum the same way regardless of order.
func Summarize(transactions []models.Transaction) Summary {
	summary := Summary{Income: decimal.Zero, Expense: decimal.Zero}

	for _, t := range transactions {
		switch t.Type {
		case models.TypeIncome:
			summary.Income = summary.Income.Add(t.Amount)
		case models.TypeExpense:
			summary.Expense = summary.Expense.Add(t.Amount)
		}
	}

	return summary
}

// CategorySpend is the expense total of one category and its share of
// the overall expense total.
type CategorySpend struct {
	Category   string          `json:"category" example:"Groceries"`
	Amount     decimal.Decimal `json:"amount" example:"250"`
	Percentage decimal.Decimal `json:"percentage" example:"14.3"`
}

// ByCategory groups the expense transactions by category and sorts the
// groups by descending amount. Categories with equal amounts keep the
// order in which they first appeared. Income transactions do not
// contribute.
//
// Percentages are shares of the expense total, rounded to one decimal
// place. With no expenses at all the result is empty, there is no
// division by zero.
func ByCategory(transactions []models.Transaction) []CategorySpend {
	totals := make(map[string]int)
	var spends []CategorySpend

	total := decimal.Zero
	for _, t := range transactions {
		if t.Type != models.TypeExpense {
			continue
		}

		total = total.Add(t.Amount)

		i, seen := totals[t.Category]
		if !seen {
			totals[t.Category] = len(spends)
			spends = append(spends, CategorySpend{Category: t.Category, Amount: t.Amount})
			continue
		}

		spends[i].Amount = spends[i].Amount.Add(t.Amount)
	}

	if total.IsZero() {
		return []CategorySpend{}
	}

	hundred := decimal.NewFromInt(100)
	for i := range spends {
		spends[i].Percentage = spends[i].Amount.Mul(hundred).Div(total).Round(1)
	}

	// SortStableFunc keeps first appearance order for equal amounts
	slices.SortStableFunc(spends, func(a, b CategorySpend) int {
		return b.Amount.Cmp(a.Amount)
	})

	return spends
}

// TrendPoint is the income and expense total of one month in a trend
// window.
type TrendPoint struct {
	Month   types.Month     `json:"month" example:"2024-03"`
	Income  decimal.Decimal `json:"income" example:"3000"`
	Expense decimal.Decimal `json:"expense" example:"1750"`
}

// Trend returns the income and expense totals for the window of months
// ending at month, oldest first. Months without transactions report
// zero totals so that the window always has exactly window entries.
func Trend(ctx context.Context, db *gorm.DB, householdID uuid.UUID, month types.Month, window int) ([]TrendPoint, error) {
	if window < 1 {
		return nil, ErrWindowTooSmall
	}

	if month.IsZero() {
		return nil, ErrInvalidPeriod
	}

	points := make([]TrendPoint, window)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < window; i++ {
		i := i
		m := month.AddDate(0, i-window+1)

		g.Go(func() error {
			transactions, err := MonthTransactions(ctx, db, householdID, m)
			if err != nil {
				return err
			}

			summary := Summarize(transactions)
			points[i] = TrendPoint{Month: m, Income: summary.Income, Expense: summary.Expense}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return points, nil
}
