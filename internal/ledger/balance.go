package ledger

import (
	"context"
	"fmt"

	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OpeningBalance computes the balance a household carries into a month.
//
// It is always derived from the full prior history: the sum of all
// income minus all expenses strictly before the first day of the month.
// A household with no transactions before the month opens at zero.
func OpeningBalance(ctx context.Context, db *gorm.DB, householdID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	if month.IsZero() {
		return decimal.Zero, ErrInvalidPeriod
	}

	var rows []struct {
		Type  models.RecordType
		Total decimal.NullDecimal
	}

	err := db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("type, SUM(amount) AS total").
		Where("household_id = ?", householdID).
		Where("datetime(transactions.date) < datetime(?)", month.FirstDay()).
		Group("type").
		Find(&rows).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	balance := decimal.Zero
	for _, row := range rows {
		switch row.Type {
		case models.TypeIncome:
			balance = balance.Add(row.Total.Decimal)
		case models.TypeExpense:
			balance = balance.Sub(row.Total.Decimal)
		}
	}

	return balance, nil
}

// MonthTransactions returns all transactions of a household posted
// within the month, newest first. Transactions on the same day keep
// their creation order, newest first as well.
func MonthTransactions(ctx context.Context, db *gorm.DB, householdID uuid.UUID, month types.Month) ([]models.Transaction, error) {
	if month.IsZero() {
		return nil, ErrInvalidPeriod
	}

	var transactions []models.Transaction
	err := db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Where("datetime(transactions.date) >= datetime(?)", month.FirstDay()).
		Where("datetime(transactions.date) < datetime(?)", month.AddDate(0, 1).FirstDay()).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	return transactions, nil
}

// MonthBudgetItems returns all budget items of a household for the
// month in their creation order.
func MonthBudgetItems(ctx context.Context, db *gorm.DB, householdID uuid.UUID, month types.Month) ([]models.BudgetItem, error) {
	if month.IsZero() {
		return nil, ErrInvalidPeriod
	}

	var items []models.BudgetItem
	err := db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Where("month = ?", month).
		Order("datetime(created_at) ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	return items, nil
}
