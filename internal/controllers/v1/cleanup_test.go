package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/homeledger/backend/internal/controllers/v1"
	"github.com/homeledger/backend/internal/types"
	"github.com/homeledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	h := createTestHousehold(suite.T(), v1.HouseholdEditable{})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{HouseholdID: h.Data.ID})
	_ = createTestBudgetItem(suite.T(), v1.BudgetItemEditable{HouseholdID: h.Data.ID, Month: types.NewMonth(2024, time.March)})
	_ = createTestTodo(suite.T(), v1.TodoEditable{HouseholdID: h.Data.ID, Title: "Delete me"})

	tests := []string{
		"http://example.com/v1/households",
		"http://example.com/v1/transactions",
		"http://example.com/v1/budget-items",
		"http://example.com/v1/todos",
	}

	// Delete
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodGet, tt, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"No confirmation", ""},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
