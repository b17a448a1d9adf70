package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/homeledger/backend/internal/controllers/v1"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/homeledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBudgetItem(t *testing.T, b v1.BudgetItemEditable, expectedStatus ...int) v1.BudgetItemResponse {
	if b.HouseholdID == uuid.Nil {
		b.HouseholdID = createTestHousehold(t, v1.HouseholdEditable{}).Data.ID
	}

	if b.Type == "" {
		b.Type = models.TypeExpense
	}

	if b.Amount.IsZero() {
		b.Amount = decimal.NewFromFloat(100)
	}

	if b.Month.IsZero() {
		b.Month = types.NewMonth(2024, time.March)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.BudgetItemEditable{b}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/budget-items", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.BudgetItemCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.BudgetItemResponse{}
}

// TestBudgetItemsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBudgetItemsDBClosed() {
	h := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestBudgetItem(t, v1.BudgetItemEditable{HouseholdID: h.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/budget-items", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.BudgetItemListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestBudgetItemsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBudgetItemsOptions() {
	tests := []struct {
		name   string
		id     string // path at the budget items endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No BudgetItem with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"BudgetItem exists", createTestBudgetItem(suite.T(), v1.BudgetItemEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/budget-items", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetItemsCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                               // expected HTTP status
		testFunc func(t *testing.T, r v1.BudgetItemCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "title": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, r v1.BudgetItemCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field BudgetItemEditable.title of type string", *r.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, r v1.BudgetItemCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *r.Error)
			},
		},
		{
			"Non-existing Household",
			`[{ "householdId": "ea85ad1a-3679-4ced-b83b-89566c12ece9", "type": "expense", "amount": 100, "month": "2024-03" }]`,
			http.StatusNotFound,
			func(t *testing.T, r v1.BudgetItemCreateResponse) {
				assert.Equal(t, "there is no household matching your query", *r.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budget-items", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BudgetItemCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetItemsCreateInvalidRecords() {
	h := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	day := func(d int) *int { return &d }

	tests := []struct {
		name string
		body v1.BudgetItemEditable
		err  error
	}{
		{
			"No month",
			v1.BudgetItemEditable{HouseholdID: h.Data.ID, Type: models.TypeExpense, Amount: decimal.NewFromFloat(10)},
			models.ErrMonthNotSet,
		},
		{
			"Due day out of range",
			v1.BudgetItemEditable{HouseholdID: h.Data.ID, Type: models.TypeExpense, Amount: decimal.NewFromFloat(10), Month: types.NewMonth(2024, time.March), DueDay: day(32)},
			models.ErrDueDayOutOfRange,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budget-items", []v1.BudgetItemEditable{tt.body})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.BudgetItemCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetItemsGetFilter() {
	h1 := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	h2 := createTestHousehold(suite.T(), v1.HouseholdEditable{Person1Name: "Charlie"})

	_ = createTestBudgetItem(suite.T(), v1.BudgetItemEditable{
		HouseholdID: h1.Data.ID,
		Type:        models.TypeIncome,
		Title:       "Salary",
		Amount:      decimal.NewFromFloat(2500),
		Recurring:   true,
		Month:       types.NewMonth(2024, time.March),
	})

	_ = createTestBudgetItem(suite.T(), v1.BudgetItemEditable{
		HouseholdID: h1.Data.ID,
		Title:       "Rent",
		Amount:      decimal.NewFromFloat(1200),
		Recurring:   true,
		Checked:     true,
		Month:       types.NewMonth(2024, time.March),
	})

	_ = createTestBudgetItem(suite.T(), v1.BudgetItemEditable{
		HouseholdID: h1.Data.ID,
		Title:       "Birthday present",
		Amount:      decimal.NewFromFloat(50),
		Month:       types.NewMonth(2024, time.April),
	})

	_ = createTestBudgetItem(suite.T(), v1.BudgetItemEditable{
		HouseholdID: h2.Data.ID,
		Title:       "Rent",
		Amount:      decimal.NewFromFloat(900),
		Month:       types.NewMonth(2024, time.March),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 4},
		{"Household 1", fmt.Sprintf("household=%s", h1.Data.ID), 3},
		{"Income", "type=income", 1},
		{"Checked", "checked=true", 1},
		{"Recurring", "recurring=true", 2},
		{"Month", "month=2024-03", 3},
		{"Month and household", fmt.Sprintf("month=2024-04&household=%s", h1.Data.ID), 1},
		{"Month empty", "month=2024-05", 0},
		{"Limit 2", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.BudgetItemListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budget-items?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.len, len(response.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetItemsGetFilterFails() {
	tests := []struct {
		name  string
		query string
	}{
		{"Invalid type", "type=budget"},
		{"Invalid month", "month=March"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budget-items?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// Verify that updating budget items works as desired
func (suite *TestSuiteStandard) TestBudgetItemsUpdate() {
	item := createTestBudgetItem(suite.T(), v1.BudgetItemEditable{Title: "Rent"})

	tests := []struct {
		name     string
		item     map[string]any                              // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, r v1.BudgetItemResponse) // tests to perform against the updated budget item resource
	}{
		{
			"Check off",
			map[string]any{
				"checked": true,
			},
			func(t *testing.T, r v1.BudgetItemResponse) {
				assert.True(t, r.Data.Checked)
			},
		},
		{
			"Uncheck",
			map[string]any{
				"checked": false,
			},
			func(t *testing.T, r v1.BudgetItemResponse) {
				assert.False(t, r.Data.Checked)
			},
		},
		{
			"Title and amount",
			map[string]any{
				"title":  "Rent after the raise",
				"amount": 1350,
			},
			func(t *testing.T, r v1.BudgetItemResponse) {
				assert.Equal(t, "Rent after the raise", r.Data.Title)
				assert.True(t, r.Data.Amount.Equal(decimal.NewFromFloat(1350)), "Amount is %s", r.Data.Amount)
			},
		},
		{
			"Move to another month",
			map[string]any{
				"month": "2024-04",
			},
			func(t *testing.T, r v1.BudgetItemResponse) {
				assert.Equal(t, types.NewMonth(2024, time.April), r.Data.Month)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, item.Data.Links.Self, tt.item)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetItemResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetItemsUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"title": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "title": 2" }`, http.StatusBadRequest},
		{"Non-existing BudgetItem", uuid.New().String(), `{"title": "Missing"}`, http.StatusNotFound},
		{"Due day out of range", "", `{"dueDay": 0}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				item := createTestBudgetItem(suite.T(), v1.BudgetItemEditable{})
				tt.id = item.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/budget-items/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestBudgetItemsDelete verifies all cases for budget item deletions.
func (suite *TestSuiteStandard) TestBudgetItemsDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing BudgetItem", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				item := createTestBudgetItem(t, v1.BudgetItemEditable{})
				tt.id = item.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/budget-items/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCarryoverOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budget-items/carryover", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

// TestCarryover verifies that recurring items are copied into the target
// month, that copies start unchecked and that existing titles are skipped.
func (suite *TestSuiteStandard) TestCarryover() {
	h := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	_ = createTestBudgetItem(suite.T(), v1.BudgetItemEditable{
		HouseholdID: h.Data.ID,
		Title:       "Rent",
		Amount:      decimal.NewFromFloat(1200),
		Recurring:   true,
		Checked:     true,
		Month:       types.NewMonth(2024, time.March),
	})

	_ = createTestBudgetItem(suite.T(), v1.BudgetItemEditable{
		HouseholdID: h.Data.ID,
		Type:        models.TypeIncome,
		Title:       "Salary",
		Amount:      decimal.NewFromFloat(2500),
		Recurring:   true,
		Month:       types.NewMonth(2024, time.March),
	})

	// Not recurring, must not be copied
	_ = createTestBudgetItem(suite.T(), v1.BudgetItemEditable{
		HouseholdID: h.Data.ID,
		Title:       "Birthday present",
		Amount:      decimal.NewFromFloat(50),
		Month:       types.NewMonth(2024, time.March),
	})

	// Already exists in the target month, must be skipped
	_ = createTestBudgetItem(suite.T(), v1.BudgetItemEditable{
		HouseholdID: h.Data.ID,
		Title:       "Rent",
		Amount:      decimal.NewFromFloat(1250),
		Recurring:   true,
		Month:       types.NewMonth(2024, time.April),
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budget-items/carryover", v1.CarryoverEditable{
		HouseholdID: h.Data.ID,
		From:        types.NewMonth(2024, time.March),
		To:          types.NewMonth(2024, time.April),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CarryoverResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1, "Only the salary must be carried over")
	assert.Equal(suite.T(), "Salary", response.Data[0].Title)
	assert.Equal(suite.T(), types.NewMonth(2024, time.April), response.Data[0].Month)
	assert.False(suite.T(), response.Data[0].Checked, "Copies must start unchecked")

	// The copy is idempotent, a second run creates nothing
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budget-items/carryover", v1.CarryoverEditable{
		HouseholdID: h.Data.ID,
		From:        types.NewMonth(2024, time.March),
		To:          types.NewMonth(2024, time.April),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestCarryoverFails() {
	h := createTestHousehold(suite.T(), v1.HouseholdEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"No body", "", http.StatusBadRequest},
		{"Months not set", v1.CarryoverEditable{HouseholdID: h.Data.ID}, http.StatusBadRequest},
		{
			"Same month",
			v1.CarryoverEditable{HouseholdID: h.Data.ID, From: types.NewMonth(2024, time.March), To: types.NewMonth(2024, time.March)},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budget-items/carryover", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
