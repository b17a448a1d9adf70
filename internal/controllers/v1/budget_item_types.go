package v1

import (
	"fmt"

	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	ez_uuid "github.com/homeledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetItemEditable represents all user configurable parameters
type BudgetItemEditable struct {
	HouseholdID uuid.UUID         `json:"householdId" example:"6a9f3e1b-cbbd-4d37-a1eb-2c6d0e41ef33"` // ID of the household the item belongs to
	Type        models.RecordType `json:"type" example:"expense"`                                     // income or expense
	Title       string            `json:"title" example:"Rent" default:""`                            // Name of the item
	Amount      decimal.Decimal   `json:"amount" example:"1200"`                                      // The planned amount, must be positive
	Recurring   bool              `json:"recurring" example:"true" default:"false"`                   // Does the item repeat every month?
	Checked     bool              `json:"checked" example:"false" default:"false"`                    // Has the item been settled?
	Month       types.Month       `json:"month" example:"2024-03"`                                    // The month the item is planned for
	DueDay      *int              `json:"dueDay" example:"27"`                                        // Optional day of month the item is due, 1-31
}

func (editable BudgetItemEditable) model() models.BudgetItem {
	return models.BudgetItem{
		HouseholdID: editable.HouseholdID,
		Type:        editable.Type,
		Title:       editable.Title,
		Amount:      editable.Amount,
		Recurring:   editable.Recurring,
		Checked:     editable.Checked,
		Month:       editable.Month,
		DueDay:      editable.DueDay,
	}
}

type BudgetItemLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/budget-items/0d9817a9-bbb8-4fcf-9e37-bd8544e1bf24"`      // The budget item itself
	Household string `json:"household" example:"https://example.com/api/v1/households/6a9f3e1b-cbbd-4d37-a1eb-2c6d0e41ef33"` // The household the item belongs to
}

type BudgetItem struct {
	models.DefaultModel
	BudgetItemEditable
	Links BudgetItemLinks `json:"links"`
}

func newBudgetItem(c *gin.Context, model models.BudgetItem) BudgetItem {
	url := c.GetString(string(models.DBContextURL))

	return BudgetItem{
		DefaultModel: model.DefaultModel,
		BudgetItemEditable: BudgetItemEditable{
			HouseholdID: model.HouseholdID,
			Type:        model.Type,
			Title:       model.Title,
			Amount:      model.Amount,
			Recurring:   model.Recurring,
			Checked:     model.Checked,
			Month:       model.Month,
			DueDay:      model.DueDay,
		},
		Links: BudgetItemLinks{
			Self:      fmt.Sprintf("%s/v1/budget-items/%s", url, model.ID),
			Household: fmt.Sprintf("%s/v1/households/%s", url, model.HouseholdID),
		},
	}
}

type BudgetItemListResponse struct {
	Data       []BudgetItem `json:"data"`                                                          // List of BudgetItems
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type BudgetItemCreateResponse struct {
	Data  []BudgetItemResponse `json:"data"`                                                          // List of the created BudgetItems or their respective error
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetItemCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetItemResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetItemResponse struct {
	Data  *BudgetItem `json:"data"`                                                          // Data for the BudgetItem
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetItemQueryFilter struct {
	HouseholdID ez_uuid.UUID      `form:"household"`                   // By ID of the Household
	Type        models.RecordType `form:"type"`                        // By type
	Checked     bool              `form:"checked"`                     // Has the item been settled?
	Recurring   bool              `form:"recurring"`                   // Does the item repeat every month?
	Month       string            `form:"month" filterField:"false"`   // By month in YYYY-MM format
	Offset      uint              `form:"offset" filterField:"false"`  // The offset of the first BudgetItem returned. Defaults to 0.
	Limit       int               `form:"limit" filterField:"false"`   // Maximum number of BudgetItems to return. Defaults to 50.
}

func (f BudgetItemQueryFilter) model() models.BudgetItem {
	return models.BudgetItem{
		HouseholdID: f.HouseholdID.UUID,
		Type:        f.Type,
		Checked:     f.Checked,
		Recurring:   f.Recurring,
	}
}

// CarryoverEditable are the parameters for carrying recurring budget
// items forward into another month.
type CarryoverEditable struct {
	HouseholdID uuid.UUID   `json:"householdId" example:"6a9f3e1b-cbbd-4d37-a1eb-2c6d0e41ef33"` // ID of the household
	From        types.Month `json:"from" example:"2024-02"`                                     // The month to copy recurring items from
	To          types.Month `json:"to" example:"2024-03"`                                       // The month to create the copies in
}

type CarryoverResponse struct {
	Data  []BudgetItem `json:"data"`                                        // The items created in the target month
	Error *string      `json:"error" example:"the month must be set"`       // The error, if any occurred
}
