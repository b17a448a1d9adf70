package v1

import (
	"fmt"

	"github.com/homeledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// HouseholdEditable represents all user configurable parameters
type HouseholdEditable struct {
	Person1Name string `json:"person1Name" example:"Ann" default:""` // Name of the first household member
	Person2Name string `json:"person2Name" example:"Ben" default:""` // Name of the second household member
}

func (editable HouseholdEditable) model() models.Household {
	return models.Household{
		Person1Name: editable.Person1Name,
		Person2Name: editable.Person2Name,
	}
}

type HouseholdLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/households/6a9f3e1b-cbbd-4d37-a1eb-2c6d0e41ef33"`                 // The household itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?household=6a9f3e1b-cbbd-4d37-a1eb-2c6d0e41ef33"` // Transactions for this household
	BudgetItems  string `json:"budgetItems" example:"https://example.com/api/v1/budget-items?household=6a9f3e1b-cbbd-4d37-a1eb-2c6d0e41ef33"`  // Budget items for this household
	Todos        string `json:"todos" example:"https://example.com/api/v1/todos?household=6a9f3e1b-cbbd-4d37-a1eb-2c6d0e41ef33"`               // Todos for this household
}

type Household struct {
	models.DefaultModel
	HouseholdEditable
	Links HouseholdLinks `json:"links"`
}

func newHousehold(c *gin.Context, model models.Household) Household {
	url := c.GetString(string(models.DBContextURL))

	return Household{
		DefaultModel: model.DefaultModel,
		HouseholdEditable: HouseholdEditable{
			Person1Name: model.Person1Name,
			Person2Name: model.Person2Name,
		},
		Links: HouseholdLinks{
			Self:         fmt.Sprintf("%s/v1/households/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?household=%s", url, model.ID),
			BudgetItems:  fmt.Sprintf("%s/v1/budget-items?household=%s", url, model.ID),
			Todos:        fmt.Sprintf("%s/v1/todos?household=%s", url, model.ID),
		},
	}
}

type HouseholdListResponse struct {
	Data       []Household `json:"data"`                                                          // List of Households
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type HouseholdCreateResponse struct {
	Data  []HouseholdResponse `json:"data"`                                                          // List of the created Households or their respective error
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (h *HouseholdCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	h.Data = append(h.Data, HouseholdResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type HouseholdResponse struct {
	Data  *Household `json:"data"`                                                          // Data for the Household
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type HouseholdQueryFilter struct {
	Person string `form:"person" filterField:"false"` // By name of either member
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Household returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Households to return. Defaults to 50.
}
