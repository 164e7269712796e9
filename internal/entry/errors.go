package entry

import "errors"

var (
	ErrFormNotFound         = errors.New("there is no entry form with this ID")
	ErrInvalidAmount        = errors.New("the amount is not a valid number")
	ErrNoCategory           = errors.New("no category is selected, create a category first")
	ErrCategoryNotAvailable = errors.New("the category is not available for the selected type")
)
