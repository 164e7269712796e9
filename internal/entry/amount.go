package entry

import (
	"fmt"
	"strings"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// AdjustedAmount parses the calculator value and signs it for the category
// type: expenses are negative, income is non-negative.
//
// Zero carries no sign.
func AdjustedAmount(categoryType models.CategoryType, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	amount = amount.Abs()
	if categoryType == models.CategoryTypeExpense {
		return amount.Neg(), nil
	}

	return amount, nil
}
