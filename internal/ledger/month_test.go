package ledger_test

import (
	"context"

	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestForMonth() {
	household := suite.createTestHousehold(models.Household{})

	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(300), Date: date(2024, 1, 5)})
	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(100), Category: "Groceries", Date: date(2024, 1, 20)})
	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(50), Date: date(2024, 2, 3)})
	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(20), Category: "Transit", Date: date(2024, 2, 14)})

	suite.createTestBudgetItem(models.BudgetItem{HouseholdID: household.ID, Type: models.TypeExpense, Title: "Internet", Amount: decimal.NewFromInt(50), Checked: true, Month: types.NewMonth(2024, 2)})
	suite.createTestBudgetItem(models.BudgetItem{HouseholdID: household.ID, Type: models.TypeExpense, Title: "Streaming", Amount: decimal.NewFromInt(30), Month: types.NewMonth(2024, 2)})

	view, err := ledger.ForMonth(context.Background(), models.DB, household.ID, types.NewMonth(2024, 2))
	suite.Require().NoError(err)

	suite.Assert().True(view.OpeningBalance.Equal(decimal.NewFromInt(200)), "got %s", view.OpeningBalance)
	suite.Assert().True(view.Income.Equal(decimal.NewFromInt(50)))
	suite.Assert().True(view.Expense.Equal(decimal.NewFromInt(20)))
	suite.Assert().True(view.ClosingBalance.Equal(decimal.NewFromInt(230)), "got %s", view.ClosingBalance)

	suite.Require().Len(view.Transactions, 2)
	suite.Require().Len(view.Categories, 1)
	suite.Assert().Equal("Transit", view.Categories[0].Category)

	suite.Assert().True(view.Budget.Expense.Planned.Equal(decimal.NewFromInt(80)))
	suite.Assert().True(view.Budget.Expense.Settled.Equal(decimal.NewFromInt(50)))
	suite.Assert().True(view.Budget.Expense.Gap.Equal(decimal.NewFromInt(30)))
}

// The closing balance of a month must always be the opening balance of
// the next month, however the transactions are distributed.
func (suite *TestSuiteStandard) TestForMonthBalanceContinuity() {
	household := suite.createTestHousehold(models.Household{})

	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(321), Date: date(2023, 11, 28)})
	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(123), Date: date(2023, 12, 31)})
	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(45), Date: date(2024, 1, 1)})

	month := types.NewMonth(2023, 11)
	for i := 0; i < 4; i++ {
		view, err := ledger.ForMonth(context.Background(), models.DB, household.ID, month)
		suite.Require().NoError(err)

		next, err := ledger.ForMonth(context.Background(), models.DB, household.ID, month.AddDate(0, 1))
		suite.Require().NoError(err)

		suite.Assert().True(view.ClosingBalance.Equal(next.OpeningBalance),
			"closing balance of %s is %s but %s opens at %s", view.Month, view.ClosingBalance, next.Month, next.OpeningBalance)

		month = month.AddDate(0, 1)
	}
}

func (suite *TestSuiteStandard) TestForMonthRetroactiveEdit() {
	household := suite.createTestHousehold(models.Household{})

	old := suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(100), Date: date(2024, 1, 5)})

	view, err := ledger.ForMonth(context.Background(), models.DB, household.ID, types.NewMonth(2024, 3))
	suite.Require().NoError(err)
	suite.Require().True(view.OpeningBalance.Equal(decimal.NewFromInt(100)))

	// Editing a past month shifts every later opening balance
	old.Amount = decimal.NewFromInt(500)
	suite.Require().NoError(models.DB.Save(&old).Error)

	view, err = ledger.ForMonth(context.Background(), models.DB, household.ID, types.NewMonth(2024, 3))
	suite.Require().NoError(err)
	suite.Assert().True(view.OpeningBalance.Equal(decimal.NewFromInt(500)), "got %s", view.OpeningBalance)
}

func (suite *TestSuiteStandard) TestForMonthInvalidMonth() {
	household := suite.createTestHousehold(models.Household{})

	_, err := ledger.ForMonth(context.Background(), models.DB, household.ID, types.Month{})
	suite.Assert().ErrorIs(err, ledger.ErrInvalidPeriod)
}

func (suite *TestSuiteStandard) TestForMonthStoreUnavailable() {
	household := suite.createTestHousehold(models.Household{})
	suite.CloseDB()

	_, err := ledger.ForMonth(context.Background(), models.DB, household.ID, types.NewMonth(2024, 2))
	suite.Assert().ErrorIs(err, ledger.ErrStoreUnavailable)
}
