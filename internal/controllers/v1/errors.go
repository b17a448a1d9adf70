package v1

import (
	"errors"
	"net/http"

	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no transaction matching your query"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, ledger.ErrStoreUnavailable) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errHouseholdIDParameter = errors.New("the household parameter must be set")
	errMonthNotSetInQuery   = errors.New("the month query parameter must be set")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Carryover errors
var (
	errCarryoverSameMonth = errors.New("the source and target month must differ")
)
