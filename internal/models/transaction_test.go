package models_test

import (
	"strings"
	"time"

	"github.com/homeledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestTransactionFindTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	transaction := models.Transaction{
		Date: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
	}

	err := transaction.AfterFind(models.DB)
	if err != nil {
		assert.Fail(suite.T(), "transaction.AfterFind failed")
	}

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionSaveTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	transaction := models.Transaction{
		Type:   models.TypeExpense,
		Amount: decimal.NewFromFloat(10),
	}
	err := transaction.BeforeSave(&gorm.DB{})
	if err != nil {
		assert.Fail(suite.T(), "transaction.BeforeSave failed")
	}

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")

	transaction.Date = time.Date(2000, 1, 2, 3, 4, 5, 6, tz)
	err = transaction.BeforeSave(&gorm.DB{})
	if err != nil {
		assert.Fail(suite.T(), "transaction.BeforeSave failed")
	}

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionType() {
	tests := []struct {
		recordType models.RecordType
		err        error
	}{
		{models.TypeIncome, nil},
		{models.TypeExpense, nil},
		{"transfer", models.ErrTypeInvalid},
		{"", models.ErrTypeInvalid},
	}

	for _, tt := range tests {
		transaction := models.Transaction{
			Type:   tt.recordType,
			Amount: decimal.NewFromFloat(10),
		}

		err := transaction.BeforeSave(&gorm.DB{})
		assert.ErrorIs(suite.T(), err, tt.err)
	}
}

func (suite *TestSuiteStandard) TestTransactionAmount() {
	tests := []struct {
		amount decimal.Decimal
		err    error
	}{
		{decimal.NewFromFloat(-10), models.ErrAmountNotPositive},
		{decimal.Zero, models.ErrAmountNotPositive},
		{decimal.NewFromFloat(0.01), nil},
	}

	for _, tt := range tests {
		transaction := models.Transaction{
			Type:   models.TypeExpense,
			Amount: tt.amount,
		}

		err := transaction.BeforeSave(&gorm.DB{})
		assert.ErrorIs(suite.T(), err, tt.err)
	}
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	category := " Groceries  "
	memo := "  Weekly shopping \t"
	person := " Ann "

	transaction := suite.createTestTransaction(models.Transaction{
		HouseholdID: suite.createTestHousehold(models.Household{}).ID,
		Category:    category,
		Memo:        memo,
		Person:      person,
	})

	assert.Equal(suite.T(), strings.TrimSpace(category), transaction.Category)
	assert.Equal(suite.T(), strings.TrimSpace(memo), transaction.Memo)
	assert.Equal(suite.T(), strings.TrimSpace(person), transaction.Person)
}

func (suite *TestSuiteStandard) TestTransactionInvalidHousehold() {
	transaction := models.Transaction{
		HouseholdID: uuid.New(),
		Type:        models.TypeExpense,
		Amount:      decimal.NewFromFloat(10),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
