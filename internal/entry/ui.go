package entry

import "sync"

// Route names a view the client navigates to.
type Route string

// RouteBook is the ledger view shown after a transaction has been saved.
const RouteBook Route = "Book"

// UI receives the side effects of an entry form.
type UI interface {
	Navigate(route Route)
	Alert(message string)
	// LockScroll locks or unlocks page scrolling while the day picker is open.
	LockScroll(locked bool)
}

// Events are the side effects collected by an Outbox since it was last drained.
type Events struct {
	Alerts       []string `json:"alerts"`
	Navigate     *Route   `json:"navigate"`
	ScrollLocked bool     `json:"scrollLocked"`
}

// Outbox is a UI that collects side effects until they are drained.
type Outbox struct {
	mu           sync.Mutex
	alerts       []string
	navigate     *Route
	scrollLocked bool
}

func (o *Outbox) Navigate(route Route) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.navigate = &route
}

func (o *Outbox) Alert(message string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.alerts = append(o.alerts, message)
}

func (o *Outbox) LockScroll(locked bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.scrollLocked = locked
}

// Drain returns the collected events and resets alerts and navigation.
// The scroll lock is state and is kept.
func (o *Outbox) Drain() Events {
	o.mu.Lock()
	defer o.mu.Unlock()

	events := Events{
		Alerts:       o.alerts,
		Navigate:     o.navigate,
		ScrollLocked: o.scrollLocked,
	}
	if events.Alerts == nil {
		events.Alerts = []string{}
	}

	o.alerts = nil
	o.navigate = nil

	return events
}
