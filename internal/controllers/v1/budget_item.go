package v1

import (
	"net/http"

	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterBudgetItemRoutes registers the routes for budget items with
// the RouterGroup that is passed.
func RegisterBudgetItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetItemList)
		r.GET("", GetBudgetItems)
		r.POST("", CreateBudgetItems)
	}

	// Carryover of recurring items
	{
		r.OPTIONS("/carryover", OptionsCarryover)
		r.POST("/carryover", Carryover)
	}

	// BudgetItem with ID
	{
		r.OPTIONS("/:id", OptionsBudgetItemDetail)
		r.GET("/:id", GetBudgetItem)
		r.PATCH("/:id", UpdateBudgetItem)
		r.DELETE("/:id", DeleteBudgetItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetItems
// @Success		204
// @Router			/v1/budget-items [options]
func OptionsBudgetItemList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetItems
// @Success		204
// @Router			/v1/budget-items/carryover [options]
func OptionsCarryover(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [options]
func OptionsBudgetItemDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.BudgetItem{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budget items
// @Description	Creates new budget items
// @Tags			BudgetItems
// @Produce		json
// @Success		201			{object}	BudgetItemCreateResponse
// @Failure		400			{object}	BudgetItemCreateResponse
// @Failure		404			{object}	BudgetItemCreateResponse
// @Failure		500			{object}	BudgetItemCreateResponse
// @Param			budgetItems	body		[]BudgetItemEditable	true	"BudgetItems"
// @Router			/v1/budget-items [post]
func CreateBudgetItems(c *gin.Context) {
	var editables []BudgetItemEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetItemCreateResponse{}

	for _, editable := range editables {
		item := editable.model()

		err = models.DB.Create(&item).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudgetItem(c, item)
		r.Data = append(r.Data, BudgetItemResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Carry recurring items forward
// @Description	Copies the recurring budget items of one month into another month. Items whose title already exists in the target month are skipped, the copies start unchecked.
// @Tags			BudgetItems
// @Produce		json
// @Success		201		{object}	CarryoverResponse
// @Failure		400		{object}	CarryoverResponse
// @Failure		404		{object}	CarryoverResponse
// @Failure		500		{object}	CarryoverResponse
// @Param			carryover	body	CarryoverEditable	true	"Carryover"
// @Router			/v1/budget-items/carryover [post]
func Carryover(c *gin.Context) {
	var editable CarryoverEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CarryoverResponse{
			Error: &e,
		})
		return
	}

	if editable.From.IsZero() || editable.To.IsZero() {
		e := models.ErrMonthNotSet.Error()
		c.JSON(http.StatusBadRequest, CarryoverResponse{
			Error: &e,
		})
		return
	}

	if editable.From.Equal(editable.To) {
		e := errCarryoverSameMonth.Error()
		c.JSON(http.StatusBadRequest, CarryoverResponse{
			Error: &e,
		})
		return
	}

	recurring, err := ledger.MonthBudgetItems(c.Request.Context(), models.DB, editable.HouseholdID, editable.From)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CarryoverResponse{
			Error: &e,
		})
		return
	}

	existing, err := ledger.MonthBudgetItems(c.Request.Context(), models.DB, editable.HouseholdID, editable.To)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CarryoverResponse{
			Error: &e,
		})
		return
	}

	existingTitles := make(map[string]bool, len(existing))
	for _, item := range existing {
		existingTitles[item.Title] = true
	}

	data := make([]BudgetItem, 0)
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range recurring {
			if !item.Recurring || existingTitles[item.Title] {
				continue
			}

			copied := models.BudgetItem{
				HouseholdID: item.HouseholdID,
				Type:        item.Type,
				Title:       item.Title,
				Amount:      item.Amount,
				Recurring:   true,
				Checked:     false,
				Month:       editable.To,
				DueDay:      item.DueDay,
			}

			if err := tx.Create(&copied).Error; err != nil {
				return err
			}

			data = append(data, newBudgetItem(c, copied))
		}

		return nil
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CarryoverResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, CarryoverResponse{Data: data})
}

// @Summary		Get budget items
// @Description	Returns a list of budget items
// @Tags			BudgetItems
// @Produce		json
// @Success		200	{object}	BudgetItemListResponse
// @Failure		400	{object}	BudgetItemListResponse
// @Failure		500	{object}	BudgetItemListResponse
// @Router			/v1/budget-items [get]
// @Param			household	query	string	false	"Filter by household ID"
// @Param			type		query	string	false	"Filter by type"
// @Param			checked		query	bool	false	"Has the item been settled?"
// @Param			recurring	query	bool	false	"Does the item repeat every month?"
// @Param			month		query	string	false	"Filter by month in YYYY-MM format"
// @Param			offset		query	uint	false	"The offset of the first BudgetItem returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of BudgetItems to return. Defaults to 50."
func GetBudgetItems(c *gin.Context) {
	var filter BudgetItemQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	if slices.Contains(setFields, "Type") && !filter.Type.Valid() {
		s := models.ErrTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	filterModel := filter.model()

	q := models.DB.
		Order("datetime(created_at) ASC").
		Where(&filterModel, queryFields...)

	if slices.Contains(setFields, "Month") {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, BudgetItemListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("month = ?", month)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 BudgetItems and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var items []models.BudgetItem
	err := q.Find(&items).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BudgetItem, 0)
	for _, item := range items {
		data = append(data, newBudgetItem(c, item))
	}

	c.JSON(http.StatusOK, BudgetItemListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget item
// @Description	Returns a specific budget item
// @Tags			BudgetItems
// @Produce		json
// @Success		200	{object}	BudgetItemResponse
// @Failure		400	{object}	BudgetItemResponse
// @Failure		404	{object}	BudgetItemResponse
// @Failure		500	{object}	BudgetItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [get]
func GetBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	var item models.BudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetItem(c, item)
	c.JSON(http.StatusOK, BudgetItemResponse{Data: &data})
}

// @Summary		Update budget item
// @Description	Update an existing budget item. Only values to be updated need to be specified. Checking and unchecking an item is a PATCH with the checked field.
// @Tags			BudgetItems
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetItemResponse
// @Failure		400			{object}	BudgetItemResponse
// @Failure		404			{object}	BudgetItemResponse
// @Failure		500			{object}	BudgetItemResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budgetItem	body		BudgetItemEditable	true	"BudgetItem"
// @Router			/v1/budget-items/{id} [patch]
func UpdateBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	var item models.BudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetItemEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	var data BudgetItemEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	// Fields not contained in the patch keep their current value so
	// that the validation hooks see a complete record
	if data.Amount.IsZero() {
		data.Amount = item.Amount
	}
	if data.Type == "" {
		data.Type = item.Type
	}
	if data.Month.IsZero() {
		data.Month = item.Month
	}

	err = models.DB.Model(&item).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemResponse{
			Error: &s,
		})
		return
	}

	r := newBudgetItem(c, item)
	c.JSON(http.StatusOK, BudgetItemResponse{Data: &r})
}

// @Summary		Delete budget item
// @Description	Deletes a budget item
// @Tags			BudgetItems
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-items/{id} [delete]
func DeleteBudgetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var item models.BudgetItem
	err = models.DB.First(&item, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&item).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
