package v1

import (
	"fmt"
	"time"

	"github.com/homeledger/backend/internal/models"
	ez_uuid "github.com/homeledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	HouseholdID uuid.UUID         `json:"householdId" example:"6a9f3e1b-cbbd-4d37-a1eb-2c6d0e41ef33"` // ID of the household the transaction belongs to
	Type        models.RecordType `json:"type" example:"expense"`                                     // income or expense
	Amount      decimal.Decimal   `json:"amount" example:"14.50"`                                     // The amount, must be positive
	Category    string            `json:"category" example:"Food" default:""`                         // Free-form category label
	Date        time.Time         `json:"date" example:"2024-03-17T00:00:00Z"`                        // Date the transaction was made
	Memo        string            `json:"memo" example:"Lunch at the market" default:""`              // Notes about the transaction
	Person      string            `json:"person" example:"Ann" default:""`                            // Household member who posted it
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		HouseholdID: editable.HouseholdID,
		Type:        editable.Type,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Date:        editable.Date,
		Memo:        editable.Memo,
		Person:      editable.Person,
	}
}

type TransactionLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`      // The transaction itself
	Household string `json:"household" example:"https://example.com/api/v1/households/6a9f3e1b-cbbd-4d37-a1eb-2c6d0e41ef33"` // The household the transaction belongs to
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			HouseholdID: model.HouseholdID,
			Type:        model.Type,
			Amount:      model.Amount,
			Category:    model.Category,
			Date:        model.Date,
			Memo:        model.Memo,
			Person:      model.Person,
		},
		Links: TransactionLinks{
			Self:      fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Household: fmt.Sprintf("%s/v1/households/%s", url, model.HouseholdID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of Transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of the created Transactions or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the Transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	HouseholdID ez_uuid.UUID      `form:"household"`                    // By ID of the Household
	Type        models.RecordType `form:"type"`                         // By type
	Category    string            `form:"category" filterField:"false"` // By category, supports globs like "Food*"
	Person      string            `form:"person"`                       // By household member
	Month       string            `form:"month" filterField:"false"`    // By month in YYYY-MM format

	FromDate          time.Time       `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate         time.Time       `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this

	Offset uint `form:"offset" filterField:"false"` // The offset of the first Transaction returned. Defaults to 0.
	Limit  int  `form:"limit" filterField:"false"`  // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		HouseholdID: f.HouseholdID.UUID,
		Type:        f.Type,
		Person:      f.Person,
	}
}
