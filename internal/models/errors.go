package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrBookNameNotUnique     = errors.New("the book name must be unique for the user")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the book")
	ErrCategoryTypeInvalid   = errors.New("the category type must be one of 'expense' or 'income'")
	ErrTransactionBookScope  = errors.New("the category of a transaction must belong to the same book as the transaction")
)
