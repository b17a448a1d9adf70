package v1

import (
	"net/http"

	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// The default number of months in a trend, the current month included.
const defaultTrendWindow = 6

type MonthResponse struct {
	Data  *Month  `json:"data"`  // Data for the month
	Error *string `json:"error"` // The error, if any occurred
}

type Month struct {
	ledger.MonthView
	Transactions []Transaction `json:"transactions"` // Transactions of the month, newest first
}

type TrendResponse struct {
	Data  []ledger.TrendPoint `json:"data"`  // One entry per month, oldest first
	Error *string             `json:"error"` // The error, if any occurred
}

type TrendQuery struct {
	Window int `form:"window"` // Number of months, the requested month included. Defaults to 6.
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
	}

	{
		r.OPTIONS("/trend", OptionsTrend)
		r.GET("/trend", GetTrend)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Months
// @Success		204
// @Router			/v1/months/trend [options]
func OptionsTrend(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get data about a month
// @Description	Returns the opening and closing balance, the transactions, the expense breakdown by category and the budget reconciliation of a month.
// @Tags			Months
// @Produce		json
// @Success		200			{object}	MonthResponse
// @Failure		400			{object}	MonthResponse
// @Failure		404			{object}	MonthResponse
// @Failure		500			{object}	MonthResponse
// @Param			household	query		string	true	"ID formatted as string"
// @Param			month		query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	household, err := parseHouseholdQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	// The household must exist
	err = models.DB.First(&models.Household{}, household).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	month, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	view, err := ledger.ForMonth(c.Request.Context(), models.DB, household.UUID, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := Month{MonthView: view}
	data.Transactions = make([]Transaction, 0, len(view.Transactions))
	for _, transaction := range view.Transactions {
		data.Transactions = append(data.Transactions, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Get the income and expense trend
// @Description	Returns the income and expense totals for a window of months ending at the requested month, oldest first.
// @Tags			Months
// @Produce		json
// @Success		200			{object}	TrendResponse
// @Failure		400			{object}	TrendResponse
// @Failure		404			{object}	TrendResponse
// @Failure		500			{object}	TrendResponse
// @Param			household	query		string	true	"ID formatted as string"
// @Param			month		query		string	true	"The month in YYYY-MM format"
// @Param			window		query		int		false	"Number of months, the requested month included. Defaults to 6."
// @Router			/v1/months/trend [get]
func GetTrend(c *gin.Context) {
	household, err := parseHouseholdQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendResponse{
			Error: &s,
		})
		return
	}

	// The household must exist
	err = models.DB.First(&models.Household{}, household).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendResponse{
			Error: &s,
		})
		return
	}

	month, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendResponse{
			Error: &s,
		})
		return
	}

	var query TrendQuery
	_ = c.ShouldBind(&query)

	_, setFields := httputil.GetURLFields(c.Request.URL, query)

	window := defaultTrendWindow
	if slices.Contains(setFields, "Window") {
		window = query.Window
	}

	points, err := ledger.Trend(c.Request.Context(), models.DB, household.UUID, month, window)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, TrendResponse{Data: points})
}
