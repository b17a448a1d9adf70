package models

import (
	"strings"

	"github.com/homeledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetItem is a planned income or expense for a specific month.
//
// It is a forecast record: checking it off marks the plan as settled,
// it never posts a balance change itself.
type BudgetItem struct {
	DefaultModel
	HouseholdID uuid.UUID `gorm:"index"`
	Household   Household `json:"-"`
	Type        RecordType
	Title       string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Recurring   bool            // The item is expected to repeat every month
	Checked     bool            // The real-world counterpart has been confirmed
	Month       types.Month     `gorm:"index"`
	DueDay      *int            // Optional day of month the item is due, 1-31
}

// BeforeSave validates the item and trims whitespace from the title.
func (b *BudgetItem) BeforeSave(_ *gorm.DB) error {
	b.Title = strings.TrimSpace(b.Title)

	if !b.Type.Valid() {
		return ErrTypeInvalid
	}

	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if b.Month.IsZero() {
		return ErrMonthNotSet
	}

	if b.DueDay != nil && (*b.DueDay < 1 || *b.DueDay > 31) {
		return ErrDueDayOutOfRange
	}

	return nil
}

func (b *BudgetItem) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	return b.checkIntegrity(tx)
}

// checkIntegrity verifies that the referenced household exists.
func (b *BudgetItem) checkIntegrity(tx *gorm.DB) error {
	return tx.First(&Household{}, b.HouseholdID).Error
}

func (b *BudgetItem) AfterCreate(_ *gorm.DB) error {
	notifyChange(TableBudgetItems, b.HouseholdID)
	return nil
}

func (b *BudgetItem) AfterUpdate(_ *gorm.DB) error {
	notifyChange(TableBudgetItems, b.HouseholdID)
	return nil
}

func (b *BudgetItem) AfterDelete(_ *gorm.DB) error {
	notifyChange(TableBudgetItems, b.HouseholdID)
	return nil
}
