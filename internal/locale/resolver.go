package locale

import (
	"context"

	"github.com/pocket-ledger/backend/internal/preferences"
	"github.com/rs/zerolog/log"
)

// Resolver resolves the locale stored in the preferences.
type Resolver struct {
	store    preferences.Store
	fallback Locale
}

// NewResolver returns a Resolver that falls back to fallback when no valid
// locale is stored. An unsupported fallback is replaced by Default.
func NewResolver(store preferences.Store, fallback Locale) *Resolver {
	if _, ok := Parse(string(fallback)); !ok {
		log.Warn().Str("fallback", string(fallback)).Str("default", string(Default)).Msg("unsupported fallback locale")
		fallback = Default
	}

	return &Resolver{store: store, fallback: fallback}
}

// Locale returns the stored locale, or the fallback when the stored value
// is missing, empty or not supported.
func (r *Resolver) Locale(ctx context.Context) Locale {
	value, ok, err := r.store.Get(ctx, preferences.KeyLocale)
	if err != nil {
		log.Error().Err(err).Msg("reading locale preference")
		return r.fallback
	}

	if !ok {
		return r.fallback
	}

	l, ok := Parse(value)
	if !ok {
		log.Debug().Str("locale", value).Msg("stored locale is not supported, using fallback")
		return r.fallback
	}

	return l
}

// Fallback returns the locale used when none is stored.
func (r *Resolver) Fallback() Locale {
	return r.fallback
}
