// Package locale resolves the user's locale and the date formatting and
// currency defaults derived from it.
package locale

import (
	"fmt"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Locale is one of the supported locale codes.
type Locale string

const (
	EnUS Locale = "en-US"
	JaJP Locale = "ja-JP"
	ZhHK Locale = "zh-HK"
	ZhTW Locale = "zh-TW"
)

// Default is used when no valid locale is configured.
const Default = EnUS

// Locales lists all supported locales.
var Locales = []Locale{EnUS, JaJP, ZhHK, ZhTW}

// Parse returns the Locale for s if s is one of the supported codes.
func Parse(s string) (Locale, bool) {
	for _, l := range Locales {
		if string(l) == s {
			return l, true
		}
	}

	return "", false
}

// Calendar maps a locale to the calendar locale used for month and
// weekday names.
type Calendar struct {
	Tag    language.Tag
	Locale monday.Locale
}

// The date formats, calendars and currencies must cover the same locales.
var (
	dateFormats = map[Locale]string{
		EnUS: "Mon, Jan 2, 2006",
		JaJP: "Monday, 2006年1月2日",
		ZhHK: "02/01/2006 Monday",
		ZhTW: "2006/01/02 Monday",
	}

	calendars = map[Locale]Calendar{
		EnUS: {Tag: language.AmericanEnglish, Locale: monday.LocaleEnUS},
		JaJP: {Tag: language.Japanese, Locale: monday.LocaleJaJP},
		ZhHK: {Tag: language.MustParse("zh-HK"), Locale: monday.LocaleZhHK},
		ZhTW: {Tag: language.MustParse("zh-TW"), Locale: monday.LocaleZhTW},
	}

	currencies = map[Locale]currency.Unit{
		EnUS: currency.USD,
		JaJP: currency.JPY,
		ZhHK: currency.HKD,
		ZhTW: currency.TWD,
	}
)

// Validate checks that every lookup table covers exactly the supported locales.
func Validate() error {
	for _, l := range Locales {
		if _, ok := dateFormats[l]; !ok {
			return fmt.Errorf("no date format for locale %s", l)
		}
		if _, ok := calendars[l]; !ok {
			return fmt.Errorf("no calendar for locale %s", l)
		}
		if _, ok := currencies[l]; !ok {
			return fmt.Errorf("no currency for locale %s", l)
		}
	}

	if len(dateFormats) != len(Locales) || len(calendars) != len(Locales) || len(currencies) != len(Locales) {
		return fmt.Errorf("locale tables contain locales that are not supported")
	}

	return nil
}

// DateFormat returns the time layout for the locale.
func (l Locale) DateFormat() string {
	return dateFormats[l]
}

// Calendar returns the calendar names for the locale.
func (l Locale) Calendar() Calendar {
	return calendars[l]
}

// Currency returns the default currency for the locale.
func (l Locale) Currency() currency.Unit {
	return currencies[l]
}

// FormatDate formats t with the locale's date format and localized names.
func (l Locale) FormatDate(t time.Time) string {
	return monday.Format(t, l.DateFormat(), l.Calendar().Locale)
}
