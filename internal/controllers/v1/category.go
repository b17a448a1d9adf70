package v1

import (
	"net/http"

	"github.com/homeledger/backend/internal/httputil"
	"github.com/homeledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// defaultCategories are suggested to every household, in display order.
var defaultCategories = []string{
	"Salary",
	"Food",
	"Transport",
	"Rent",
	"Phone",
	"Shopping",
	"Medical",
	"Utilities",
	"Leisure",
	"Savings",
}

// The number of transactions scanned for recently used categories and
// the number of recent categories suggested before the defaults.
const (
	recentCategoryScan  = 20
	recentCategoryCount = 5
)

type CategoryListResponse struct {
	Data  []string `json:"data" example:"Food,Transport"` // Category suggestions, recently used ones first
	Error *string  `json:"error"`                         // The error, if any occurred
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get category suggestions
// @Description	Returns the categories recently used by the household followed by the default suggestions, without duplicates.
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	CategoryListResponse
// @Failure		400			{object}	CategoryListResponse
// @Failure		404			{object}	CategoryListResponse
// @Failure		500			{object}	CategoryListResponse
// @Param			household	query		string	true	"ID formatted as string"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	household, err := parseHouseholdQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	// The household must exist
	err = models.DB.First(&models.Household{}, household).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	var used []string
	err = models.DB.
		Model(&models.Transaction{}).
		Where("household_id = ?", household.UUID).
		Order("datetime(created_at) DESC").
		Limit(recentCategoryScan).
		Pluck("category", &used).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	seen := make(map[string]bool)
	data := make([]string, 0, len(defaultCategories)+recentCategoryCount)

	recent := 0
	for _, category := range used {
		if recent == recentCategoryCount {
			break
		}

		if category == "" || seen[category] {
			continue
		}

		seen[category] = true
		data = append(data, category)
		recent++
	}

	for _, category := range defaultCategories {
		if seen[category] {
			continue
		}

		seen[category] = true
		data = append(data, category)
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}
