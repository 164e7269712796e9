package entry

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultIdleTimeout is the time after which a form that has not been
// accessed is unmounted and removed.
const DefaultIdleTimeout = time.Hour

type registered struct {
	form       *Form
	outbox     *Outbox
	lastAccess time.Time
}

// Registry holds the mounted forms.
//
// Forms that have not been accessed for the idle timeout are removed on
// the next Create, Get or Len.
type Registry struct {
	config Config

	mu    sync.Mutex
	forms map[uuid.UUID]*registered
}

func NewRegistry(config Config) *Registry {
	if config.Now == nil {
		config.Now = time.Now
	}

	if config.IdleTimeout <= 0 {
		config.IdleTimeout = DefaultIdleTimeout
	}

	return &Registry{
		config: config,
		forms:  make(map[uuid.UUID]*registered),
	}
}

// Create adds a new form whose side effects are collected in the returned Outbox.
func (r *Registry) Create() (*Form, *Outbox) {
	outbox := &Outbox{}
	form := NewForm(r.config, outbox)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()
	r.forms[form.ID] = &registered{form: form, outbox: outbox, lastAccess: r.config.Now()}

	return form, outbox
}

// Get returns the form and marks it as accessed.
func (r *Registry) Get(id uuid.UUID) (*Form, *Outbox, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()

	entry, ok := r.forms[id]
	if !ok {
		return nil, nil, ErrFormNotFound
	}

	entry.lastAccess = r.config.Now()
	return entry.form, entry.outbox, nil
}

// Remove unmounts the form and removes it from the registry.
func (r *Registry) Remove(id uuid.UUID) error {
	r.mu.Lock()
	entry, ok := r.forms[id]
	delete(r.forms, id)
	r.mu.Unlock()

	if !ok {
		return ErrFormNotFound
	}

	entry.form.Unmount()
	return nil
}

// Len returns the number of registered forms.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()
	return len(r.forms)
}

// sweep unmounts and removes idle forms. r.mu must be held.
func (r *Registry) sweep() {
	deadline := r.config.Now().Add(-r.config.IdleTimeout)

	for id, entry := range r.forms {
		if entry.lastAccess.After(deadline) {
			continue
		}

		entry.form.Unmount()
		delete(r.forms, id)
		log.Debug().Str("form", id.String()).Msg("removed idle entry form")
	}
}
