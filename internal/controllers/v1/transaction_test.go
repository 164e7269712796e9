package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) getTransactions(t *testing.T, query string, expectedStatus int) v1.TransactionListResponse {
	r := suite.request(t, http.MethodGet, "http://example.com/v1/transactions"+query, "")
	test.AssertHTTPStatus(t, &r, expectedStatus)

	var response v1.TransactionListResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	suite.signIn(suite.T())
	book := suite.createTestBook(suite.T(), v1.BookEditable{})
	food := suite.getCategories(suite.T(), "?name=Food", http.StatusOK).Data[0]

	name := "  Lunch "
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", models.TransactionCreate{
		BookID:          book.Data.ID,
		CategoryID:      food.ID,
		Name:            &name,
		Amount:          decimal.NewFromFloat(-12.5),
		TransactionDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &created)
	require.NotNil(suite.T(), created.Data)
	require.NotNil(suite.T(), created.Data.Name)
	assert.Equal(suite.T(), "Lunch", *created.Data.Name)
	assert.True(suite.T(), created.Data.Amount.Equal(decimal.NewFromFloat(-12.5)), "amount is %s", created.Data.Amount)
	assert.Equal(suite.T(), "http://example.com/v1/transactions?book="+book.Data.ID.String(), created.Data.Links.Transactions)

	transactions := suite.getTransactions(suite.T(), "", http.StatusOK)
	require.Len(suite.T(), transactions.Data, 1)
	assert.Equal(suite.T(), created.Data.ID, transactions.Data[0].ID)
	assert.True(suite.T(), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC).Equal(transactions.Data[0].TransactionDate))
}

func (suite *TestSuiteStandard) TestTransactionsNewestFirst() {
	suite.signIn(suite.T())
	book := suite.createTestBook(suite.T(), v1.BookEditable{})
	salary := suite.getCategories(suite.T(), "?name=Salary", http.StatusOK).Data[0]

	for _, day := range []int{3, 5, 4} {
		r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", models.TransactionCreate{
			BookID:          book.Data.ID,
			CategoryID:      salary.ID,
			Amount:          decimal.NewFromInt(int64(day)),
			TransactionDate: time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	}

	transactions := suite.getTransactions(suite.T(), "?book="+book.Data.ID.String(), http.StatusOK)
	require.Len(suite.T(), transactions.Data, 3)
	for i, day := range []int{5, 4, 3} {
		assert.Equal(suite.T(), day, transactions.Data[i].TransactionDate.Day())
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	suite.signIn(suite.T())
	book := suite.createTestBook(suite.T(), v1.BookEditable{})
	other := suite.createTestBook(suite.T(), v1.BookEditable{Name: "Other"})
	food := suite.getCategories(suite.T(), "?name=Food", http.StatusOK).Data[0]

	tests := []struct {
		name   string
		body   any
		status []int
	}{
		{"No body", "", []int{http.StatusBadRequest}},
		{"Broken body", `{"amount": "twelve"}`, []int{http.StatusBadRequest}},
		{"Unknown book", models.TransactionCreate{BookID: uuid.New(), CategoryID: food.ID}, []int{http.StatusNotFound}},
		{"Unknown category", models.TransactionCreate{BookID: book.Data.ID, CategoryID: uuid.New()}, []int{http.StatusNotFound}},
		{"Category of other book", models.TransactionCreate{BookID: other.Data.ID, CategoryID: food.ID}, []int{http.StatusBadRequest}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status...)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}

	assert.Len(suite.T(), suite.getTransactions(suite.T(), "", http.StatusOK).Data, 0)
}

func (suite *TestSuiteStandard) TestTransactionsErrors() {
	suite.getTransactions(suite.T(), "", http.StatusNotFound)
	suite.getTransactions(suite.T(), "?book=123", http.StatusBadRequest)
}
