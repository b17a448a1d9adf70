package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNotPositive = errors.New("amounts must be larger than zero")
	ErrTypeInvalid       = errors.New("the type must be either income or expense")
	ErrDueDayOutOfRange  = errors.New("the due day must be between 1 and 31")
	ErrMonthNotSet       = errors.New("the month must be set")
	ErrHouseholdNoMember = errors.New("a household needs at least one member name")

	ErrSnapshotMonthNotUnique = errors.New("you can not create multiple balance snapshots for the same household and month")
)
