package session

import "github.com/pocket-ledger/backend/internal/models"

// SeedCategory is a category created for every first book of a user.
type SeedCategory struct {
	Name string
	Icon string
	Type models.CategoryType
}

var DefaultCategories = []SeedCategory{
	{"Food", "food", models.CategoryTypeExpense},
	{"Drinks", "drinks", models.CategoryTypeExpense},
	{"Transport", "transport", models.CategoryTypeExpense},
	{"Shopping", "shopping", models.CategoryTypeExpense},
	{"Entertainment", "entertainment", models.CategoryTypeExpense},
	{"Home", "home", models.CategoryTypeExpense},
	{"Bills", "bills", models.CategoryTypeExpense},
	{"Health", "health", models.CategoryTypeExpense},
	{"Salary", "salary", models.CategoryTypeIncome},
	{"Bonus", "bonus", models.CategoryTypeIncome},
	{"Investment", "investment", models.CategoryTypeIncome},
	{"Other", "other", models.CategoryTypeIncome},
}
