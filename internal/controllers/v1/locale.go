package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/locale"
)

type Locale struct {
	Locale     locale.Locale   `json:"locale" example:"ja-JP"`                  // The resolved locale
	Fallback   locale.Locale   `json:"fallback" example:"en-US"`                // The locale used when none or an unsupported one is stored
	DateFormat string          `json:"dateFormat" example:"2006/01/02 Monday"`  // Go time layout for dates
	Currency   string          `json:"currency" example:"JPY"`                  // Default currency for new books
	Today      string          `json:"today" example:"火曜日, 2024年3月5日"`          // The current date, formatted for the locale
	Supported  []locale.Locale `json:"supported" example:"en-US,ja-JP,zh-HK,zh-TW"` // All supported locales
}

type LocaleResponse struct {
	Data Locale `json:"data"` // The resolved locale
}

// RegisterLocaleRoutes registers the routes for the locale with
// the RouterGroup that is passed.
func (co Controller) RegisterLocaleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsLocale)
	r.GET("", co.GetLocale)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Locale
// @Success		204
// @Router			/v1/locale [options]
func OptionsLocale(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get locale
// @Description	Returns the locale stored in the preferences or the fallback locale, and the formats derived from it
// @Tags			Locale
// @Produce		json
// @Success		200	{object}	LocaleResponse
// @Router			/v1/locale [get]
func (co Controller) GetLocale(c *gin.Context) {
	l := co.Locales.Locale(c.Request.Context())

	c.JSON(http.StatusOK, LocaleResponse{
		Data: Locale{
			Locale:     l,
			Fallback:   co.Locales.Fallback(),
			DateFormat: l.DateFormat(),
			Currency:   l.Currency().String(),
			Today:      l.FormatDate(time.Now()),
			Supported:  locale.Locales,
		},
	})
}
