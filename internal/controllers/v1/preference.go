package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/preferences"
)

// RegisterPreferenceRoutes registers the routes for preferences with
// the RouterGroup that is passed.
func (co Controller) RegisterPreferenceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:key", co.OptionsPreference)
	r.GET("/:key", co.GetPreference)
	r.PUT("/:key", co.SetPreference)
}

// bindPreferenceKey returns the known preference key from the URI.
func bindPreferenceKey(c *gin.Context) (preferences.Key, error) {
	var uri URIPreference
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return "", err
	}

	key := preferences.Key(uri.Key)
	if !key.Known() {
		return "", errPreferenceKeyUnknown
	}

	return key, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Preferences
// @Success		204
// @Failure		400	{object}	httpError
// @Param			key	path		string	true	"Key of the preference"
// @Router			/v1/preferences/{key} [options]
func (co Controller) OptionsPreference(c *gin.Context) {
	_, err := bindPreferenceKey(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPut(c)
}

// @Summary		Get preference
// @Description	Returns the value of a preference
// @Tags			Preferences
// @Produce		json
// @Success		200	{object}	PreferenceResponse
// @Failure		400	{object}	PreferenceResponse
// @Failure		404	{object}	PreferenceResponse
// @Failure		500	{object}	PreferenceResponse
// @Param			key	path		string	true	"Key of the preference"
// @Router			/v1/preferences/{key} [get]
func (co Controller) GetPreference(c *gin.Context) {
	key, err := bindPreferenceKey(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferenceResponse{
			Error: &s,
		})
		return
	}

	value, ok, err := co.Preferences.Get(c.Request.Context(), key)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferenceResponse{
			Error: &s,
		})
		return
	}

	if !ok {
		s := errPreferenceNotSet.Error()
		c.JSON(status(errPreferenceNotSet), PreferenceResponse{
			Error: &s,
		})
		return
	}

	data := newPreference(c, key, value)
	c.JSON(http.StatusOK, PreferenceResponse{Data: &data})
}

// @Summary		Set preference
// @Description	Sets the value of a preference. Values are stored as they are sent.
// @Tags			Preferences
// @Accept			json
// @Produce		json
// @Success		200			{object}	PreferenceResponse
// @Failure		400			{object}	PreferenceResponse
// @Failure		500			{object}	PreferenceResponse
// @Param			key			path		string				true	"Key of the preference"
// @Param			preference	body		PreferenceEditable	true	"Preference"
// @Router			/v1/preferences/{key} [put]
func (co Controller) SetPreference(c *gin.Context) {
	key, err := bindPreferenceKey(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferenceResponse{
			Error: &s,
		})
		return
	}

	var editable PreferenceEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferenceResponse{
			Error: &s,
		})
		return
	}

	err = co.Preferences.Set(c.Request.Context(), key, editable.Value)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferenceResponse{
			Error: &s,
		})
		return
	}

	data := newPreference(c, key, editable.Value)
	c.JSON(http.StatusOK, PreferenceResponse{Data: &data})
}
