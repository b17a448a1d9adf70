package ledger

import (
	"context"
	"fmt"

	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Watcher keeps the balance snapshot cache in sync with the transaction
// history. It listens for record changes and rebuilds the affected
// household's snapshots from scratch, so that retroactive edits
// propagate to every later month.
type Watcher struct {
	db     *gorm.DB
	events <-chan models.ChangeEvent
	cancel func()
}

// NewWatcher subscribes to record changes on the given database.
func NewWatcher(db *gorm.DB) *Watcher {
	events, cancel := models.SubscribeChanges()

	return &Watcher{
		db:     db,
		events: events,
		cancel: cancel,
	}
}

// Run processes change events until the context is canceled. Rebuild
// failures are logged, the watcher keeps running and the next change
// triggers another full rebuild.
func (w *Watcher) Run(ctx context.Context) {
	defer w.cancel()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.events:
			if !ok {
				return
			}

			if event.Table != models.TableTransactions {
				continue
			}

			err := RebuildSnapshots(ctx, w.db, event.HouseholdID)
			if err != nil {
				log.Error().Err(err).Str("household", event.HouseholdID.String()).Msg("snapshot rebuild failed")
			}
		}
	}
}

// RebuildSnapshots recomputes all balance snapshots of a household from
// its full transaction history and replaces the stored ones.
//
// The rebuild never carries forward previously cached values: every
// snapshot month restarts the fold from zero over all prior
// transactions.
func RebuildSnapshots(ctx context.Context, db *gorm.DB, householdID uuid.UUID) error {
	var rows []struct {
		Month string
		Type  models.RecordType
		Total decimal.NullDecimal
	}

	err := db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("strftime('%Y-%m', transactions.date) AS month, type, SUM(amount) AS total").
		Where("household_id = ?", householdID).
		Group("month, type").
		Find(&rows).Error
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	type monthTotals struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}

	totals := make(map[types.Month]monthTotals)
	var first, last types.Month
	for _, row := range rows {
		month, err := types.ParseMonth(row.Month)
		if err != nil {
			return err
		}

		t := totals[month]
		switch row.Type {
		case models.TypeIncome:
			t.income = t.income.Add(row.Total.Decimal)
		case models.TypeExpense:
			t.expense = t.expense.Add(row.Total.Decimal)
		}
		totals[month] = t

		if first.IsZero() || month.Before(first) {
			first = month
		}
		if last.IsZero() || month.After(last) {
			last = month
		}
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(totals) == 0 {
			return tx.Where("household_id = ?", householdID).Delete(&models.BalanceSnapshot{}).Error
		}

		snapshots := make([]models.BalanceSnapshot, 0, len(totals))
		balance := decimal.Zero
		for month := first; !month.After(last); month = month.AddDate(0, 1) {
			t := totals[month]
			closing := balance.Add(t.income).Sub(t.expense)

			snapshots = append(snapshots, models.BalanceSnapshot{
				HouseholdID:    householdID,
				Month:          month,
				OpeningBalance: balance,
				ClosingBalance: closing,
			})

			balance = closing
		}

		err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "household_id"}, {Name: "month"}},
				UpdateAll: true,
			}).
			Create(&snapshots).Error
		if err != nil {
			return err
		}

		return tx.
			Where("household_id = ?", householdID).
			Where("month < ? OR month > ?", first, last).
			Delete(&models.BalanceSnapshot{}).Error
	})
}
