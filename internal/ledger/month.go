package ledger

import (
	"context"

	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthView is the complete financial picture of one household month:
// the carried-in balance, the posted totals, the expense breakdown and
// the budget reconciliation.
type MonthView struct {
	Month          types.Month          `json:"month" example:"2024-03"`
	OpeningBalance decimal.Decimal      `json:"openingBalance" example:"1250"`
	Income         decimal.Decimal      `json:"income" example:"3000"`
	Expense        decimal.Decimal      `json:"expense" example:"1750"`
	ClosingBalance decimal.Decimal      `json:"closingBalance" example:"2500"`
	Transactions   []models.Transaction `json:"transactions"`
	Categories     []CategorySpend      `json:"categories"`
	Budget         Reconciliation       `json:"budget"`
}

// ForMonth assembles the month view for a household.
//
// The closing balance always satisfies
//
//	closing = opening + income - expense
//
// and equals the opening balance of the following month.
func ForMonth(ctx context.Context, db *gorm.DB, householdID uuid.UUID, month types.Month) (MonthView, error) {
	opening, err := OpeningBalance(ctx, db, householdID, month)
	if err != nil {
		return MonthView{}, err
	}

	transactions, err := MonthTransactions(ctx, db, householdID, month)
	if err != nil {
		return MonthView{}, err
	}

	items, err := MonthBudgetItems(ctx, db, householdID, month)
	if err != nil {
		return MonthView{}, err
	}

	summary := Summarize(transactions)

	return MonthView{
		Month:          month,
		OpeningBalance: opening,
		Income:         summary.Income,
		Expense:        summary.Expense,
		ClosingBalance: opening.Add(summary.Income).Sub(summary.Expense),
		Transactions:   transactions,
		Categories:     ByCategory(transactions),
		Budget:         Reconcile(items),
	}, nil
}
