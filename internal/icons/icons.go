// Package icons maps category icon names to renderable icons.
package icons

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Icon is a renderable icon. Glyph is the identifier of the glyph in the
// icon font used by clients.
type Icon struct {
	Name  string `json:"name" example:"food"`
	Glyph string `json:"glyph" example:"fa-utensils"`
}

// Placeholder is the icon used when a category references an unknown icon.
var Placeholder = Icon{Name: "question", Glyph: "fa-circle-question"}

var icons = map[string]Icon{
	"food":          {Name: "food", Glyph: "fa-utensils"},
	"drinks":        {Name: "drinks", Glyph: "fa-mug-hot"},
	"transport":     {Name: "transport", Glyph: "fa-bus"},
	"car":           {Name: "car", Glyph: "fa-car"},
	"health":        {Name: "health", Glyph: "fa-briefcase-medical"},
	"education":     {Name: "education", Glyph: "fa-graduation-cap"},
	"entertainment": {Name: "entertainment", Glyph: "fa-gamepad"},
	"home":          {Name: "home", Glyph: "fa-house"},
	"shopping":      {Name: "shopping", Glyph: "fa-bag-shopping"},
	"bills":         {Name: "bills", Glyph: "fa-file-invoice-dollar"},
	"travel":        {Name: "travel", Glyph: "fa-plane"},
	"salary":        {Name: "salary", Glyph: "fa-money-bill-wave"},
	"bonus":         {Name: "bonus", Glyph: "fa-award"},
	"freelance":     {Name: "freelance", Glyph: "fa-laptop"},
	"investment":    {Name: "investment", Glyph: "fa-chart-line"},
	"gift":          {Name: "gift", Glyph: "fa-gift"},
	"other":         {Name: "other", Glyph: "fa-ellipsis"},
	"question":      Placeholder,
}

// Resolve returns the icon with the given name.
func Resolve(name string) (Icon, bool) {
	icon, ok := icons[name]
	return icon, ok
}

// ResolveOrPlaceholder returns the icon with the given name or the
// placeholder icon if no icon with that name exists.
func ResolveOrPlaceholder(name string) Icon {
	icon, ok := Resolve(name)
	if !ok {
		log.Warn().Str("icon", name).Msg("unknown icon, using placeholder")
		return Placeholder
	}

	return icon
}

// Names returns the names of all known icons, sorted.
func Names() []string {
	names := maps.Keys(icons)
	slices.Sort(names)
	return names
}
