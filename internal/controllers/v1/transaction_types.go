package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/models"
	ledger_uuid "github.com/pocket-ledger/backend/internal/uuid"
)

type TransactionLinks struct {
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?book=52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // All transactions of the same book
}

type Transaction struct {
	models.DefaultModel
	models.TransactionCreate
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	return Transaction{
		DefaultModel:      model.DefaultModel,
		TransactionCreate: model.TransactionCreate,
		Links: TransactionLinks{
			Transactions: c.GetString(string(models.DBContextURL)) + "/v1/transactions?book=" + model.BookID.String(),
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	BookID ledger_uuid.UUID `form:"book"` // By ID of the book. Defaults to the default book
}
