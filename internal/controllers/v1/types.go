package v1

import (
	"fmt"

	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/types"
	ez_uuid "github.com/homeledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// parseMonthQuery reads and validates the month query parameter.
//
// Month keys are parsed strictly: a key like "2023-13" is rejected
// instead of being normalized to a valid month.
func parseMonthQuery(c *gin.Context) (types.Month, error) {
	var query struct {
		Month string `form:"month"`
	}
	_ = c.ShouldBind(&query)

	if query.Month == "" {
		return types.Month{}, errMonthNotSetInQuery
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		return types.Month{}, fmt.Errorf("%w: %s", ledger.ErrInvalidPeriod, err)
	}

	return month, nil
}

// parseHouseholdQuery reads and validates the household query parameter.
func parseHouseholdQuery(c *gin.Context) (ez_uuid.UUID, error) {
	var query struct {
		Household ez_uuid.UUID `form:"household"`
	}

	err := c.ShouldBind(&query)
	if err != nil {
		return ez_uuid.Nil, err
	}

	if query.Household == ez_uuid.Nil {
		return ez_uuid.Nil, errHouseholdIDParameter
	}

	return query.Household, nil
}
