package ledger

import "errors"

var (
	// ErrInvalidPeriod is returned when a month key does not name a
	// valid calendar month. Invalid keys fail fast, they are never
	// clamped to a nearby month.
	ErrInvalidPeriod = errors.New("the month must be a valid calendar month in YYYY-MM format")

	// ErrStoreUnavailable is returned when the record store could not
	// be queried. Callers must treat the result as unknown, not as
	// zero: a balance of 0 and a balance that could not be computed
	// are different things.
	ErrStoreUnavailable = errors.New("the records could not be read from the store")

	// ErrWindowTooSmall is returned for trend windows smaller than one
	// month.
	ErrWindowTooSmall = errors.New("the trend window must cover at least one month")
)
