package models_test

import (
	"github.com/pocket-ledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestBookTrimsAndNormalizes() {
	book := suite.createTestBook(models.Book{
		UserID:   "u1",
		Name:     "  Household ",
		Currency: " twd",
	})

	suite.Assert().Equal("Household", book.Name)
	suite.Assert().Equal("TWD", book.Currency)
}

func (suite *TestSuiteStandard) TestBookNameUniquePerUser() {
	_ = suite.createTestBook(models.Book{UserID: "u1", Name: "Household"})

	err := suite.db.Create(&models.Book{UserID: "u1", Name: "Household"}).Error
	suite.Assert().ErrorIs(err, models.ErrBookNameNotUnique)

	// Another user may use the same name
	err = suite.db.Create(&models.Book{UserID: "u2", Name: "Household"}).Error
	suite.Assert().Nil(err)
}
