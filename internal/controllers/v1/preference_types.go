package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/preferences"
)

var (
	errPreferenceKeyUnknown = errors.New("the preference key is unknown, it must be one of 'loginMethod', 'locale' or 'userId'")
	errPreferenceNotSet     = fmt.Errorf("%w preference matching your query", models.ErrResourceNotFound)
)

type URIPreference struct {
	Key string `uri:"key" binding:"required" example:"locale"` // Key of the preference
}

// PreferenceEditable is the value that can be set for a preference.
type PreferenceEditable struct {
	Value string `json:"value" example:"ja-JP"` // Value of the preference
}

type PreferenceLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/preferences/locale"` // The preference itself
}

type Preference struct {
	Key   string          `json:"key" example:"locale"`  // Key of the preference
	Value string          `json:"value" example:"ja-JP"` // Value of the preference
	Links PreferenceLinks `json:"links"`
}

func newPreference(c *gin.Context, key preferences.Key, value string) Preference {
	url := c.GetString(string(models.DBContextURL))

	return Preference{
		Key:   string(key),
		Value: value,
		Links: PreferenceLinks{
			Self: fmt.Sprintf("%s/v1/preferences/%s", url, key),
		},
	}
}

type PreferenceResponse struct {
	Data  *Preference `json:"data"`                                            // Data for the preference
	Error *string     `json:"error" example:"the preference key is unknown"` // The error, if any occurred
}
