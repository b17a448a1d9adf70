package ledger_test

import (
	"context"
	"time"

	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) snapshots(householdID uuid.UUID) []models.BalanceSnapshot {
	var snapshots []models.BalanceSnapshot
	err := models.DB.
		Where("household_id = ?", householdID).
		Order("month ASC").
		Find(&snapshots).Error
	suite.Require().NoError(err)

	return snapshots
}

func (suite *TestSuiteStandard) TestRebuildSnapshots() {
	household := suite.createTestHousehold(models.Household{})

	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(300), Date: date(2024, 1, 5)})
	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(100), Date: date(2024, 1, 20)})
	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(20), Date: date(2024, 3, 14)})

	suite.Require().NoError(ledger.RebuildSnapshots(context.Background(), models.DB, household.ID))

	snapshots := suite.snapshots(household.ID)
	suite.Require().Len(snapshots, 3, "every month between the first and last transaction gets a snapshot")

	suite.Assert().True(snapshots[0].Month.Equal(types.NewMonth(2024, 1)))
	suite.Assert().True(snapshots[0].OpeningBalance.IsZero())
	suite.Assert().True(snapshots[0].ClosingBalance.Equal(decimal.NewFromInt(200)))

	// February has no transactions but carries the balance through
	suite.Assert().True(snapshots[1].Month.Equal(types.NewMonth(2024, 2)))
	suite.Assert().True(snapshots[1].OpeningBalance.Equal(decimal.NewFromInt(200)))
	suite.Assert().True(snapshots[1].ClosingBalance.Equal(decimal.NewFromInt(200)))

	suite.Assert().True(snapshots[2].Month.Equal(types.NewMonth(2024, 3)))
	suite.Assert().True(snapshots[2].ClosingBalance.Equal(decimal.NewFromInt(180)))
}

// Snapshots are a cache. After any rebuild they must agree exactly with
// the from-scratch computation.
func (suite *TestSuiteStandard) TestRebuildSnapshotsMatchesFromScratch() {
	household := suite.createTestHousehold(models.Household{})

	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(321), Date: date(2023, 11, 28)})
	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(123), Date: date(2023, 12, 31)})
	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(45), Date: date(2024, 2, 1)})

	suite.Require().NoError(ledger.RebuildSnapshots(context.Background(), models.DB, household.ID))

	for _, snapshot := range suite.snapshots(household.ID) {
		opening, err := ledger.OpeningBalance(context.Background(), models.DB, household.ID, snapshot.Month)
		suite.Require().NoError(err)
		suite.Assert().True(snapshot.OpeningBalance.Equal(opening),
			"cached opening balance for %s is %s, from scratch it is %s", snapshot.Month, snapshot.OpeningBalance, opening)

		closing, err := ledger.OpeningBalance(context.Background(), models.DB, household.ID, snapshot.Month.AddDate(0, 1))
		suite.Require().NoError(err)
		suite.Assert().True(snapshot.ClosingBalance.Equal(closing),
			"cached closing balance for %s is %s, from scratch it is %s", snapshot.Month, snapshot.ClosingBalance, closing)
	}
}

func (suite *TestSuiteStandard) TestRebuildSnapshotsRetroactiveEdit() {
	household := suite.createTestHousehold(models.Household{})

	first := suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(100), Date: date(2024, 1, 5)})
	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(10), Date: date(2024, 4, 5)})

	suite.Require().NoError(ledger.RebuildSnapshots(context.Background(), models.DB, household.ID))

	first.Amount = decimal.NewFromInt(500)
	suite.Require().NoError(models.DB.Save(&first).Error)
	suite.Require().NoError(ledger.RebuildSnapshots(context.Background(), models.DB, household.ID))

	snapshots := suite.snapshots(household.ID)
	suite.Require().Len(snapshots, 4)
	for _, snapshot := range snapshots[1:] {
		suite.Assert().True(snapshot.OpeningBalance.GreaterThanOrEqual(decimal.NewFromInt(490)),
			"every month after the edit must see the new amount, %s opens at %s", snapshot.Month, snapshot.OpeningBalance)
	}
}

func (suite *TestSuiteStandard) TestRebuildSnapshotsNoTransactions() {
	household := suite.createTestHousehold(models.Household{})

	transaction := suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(100), Date: date(2024, 1, 5)})
	suite.Require().NoError(ledger.RebuildSnapshots(context.Background(), models.DB, household.ID))
	suite.Require().Len(suite.snapshots(household.ID), 1)

	suite.Require().NoError(models.DB.Delete(&transaction).Error)
	suite.Require().NoError(ledger.RebuildSnapshots(context.Background(), models.DB, household.ID))

	suite.Assert().Empty(suite.snapshots(household.ID), "a household without transactions keeps no snapshots")
}

func (suite *TestSuiteStandard) TestWatcherRebuildsOnChange() {
	household := suite.createTestHousehold(models.Household{})

	watcher := ledger.NewWatcher(models.DB)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Run(ctx)

	suite.createTestTransaction(models.Transaction{HouseholdID: household.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(300), Date: date(2024, 1, 5)})

	suite.Require().Eventually(func() bool {
		var count int64
		models.DB.Model(&models.BalanceSnapshot{}).Where("household_id = ?", household.ID).Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond, "the watcher must rebuild snapshots after a transaction change")

	cancel()
}
