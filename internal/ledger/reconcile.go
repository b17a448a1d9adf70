package ledger

import (
	"github.com/homeledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ReconciledSide is one side of a monthly budget reconciliation, either
// all planned income or all planned expenses.
type ReconciledSide struct {
	Items   []models.BudgetItem `json:"items"`
	Planned decimal.Decimal     `json:"planned" example:"3000"` // Sum over all items
	Settled decimal.Decimal     `json:"settled" example:"2200"` // Sum over the checked items
	Gap     decimal.Decimal     `json:"gap" example:"800"`      // Planned minus settled
}

// Reconciliation is the budget state of one household month.
type Reconciliation struct {
	Income  ReconciledSide `json:"income"`
	Expense ReconciledSide `json:"expense"`
}

// Reconcile partitions budget items into income and expense sides and
// computes the planned, settled and gap totals for each.
//
// Within each side, items without a due day come first, followed by the
// dated items in ascending due day order. Items that compare equal keep
// their input order, so repeated reconciliation of the same records is
// stable.
func Reconcile(items []models.BudgetItem) Reconciliation {
	return Reconciliation{
		Income:  reconcileSide(items, models.TypeIncome),
		Expense: reconcileSide(items, models.TypeExpense),
	}
}

func reconcileSide(items []models.BudgetItem, t models.RecordType) ReconciledSide {
	side := ReconciledSide{
		Items:   []models.BudgetItem{},
		Planned: decimal.Zero,
		Settled: decimal.Zero,
	}

	for _, item := range items {
		if item.Type != t {
			continue
		}

		side.Items = append(side.Items, item)
		side.Planned = side.Planned.Add(item.Amount)
		if item.Checked {
			side.Settled = side.Settled.Add(item.Amount)
		}
	}

	slices.SortStableFunc(side.Items, func(a, b models.BudgetItem) int {
		switch {
		case a.DueDay == nil && b.DueDay == nil:
			return 0
		case a.DueDay == nil:
			return -1
		case b.DueDay == nil:
			return 1
		default:
			return *a.DueDay - *b.DueDay
		}
	})

	side.Gap = side.Planned.Sub(side.Settled)
	return side
}
