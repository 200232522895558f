package libemit

// Emitter is the behavior shared by EventEmitter and its no-op stand-in.
type Emitter interface {
	// Subscribe registers a new listener for the given key.
	Subscribe(key any, fn Listener) (*Subscription, error)

	// Publish triggers all listeners registered for the given key
	// synchronously, passing the payload to each.
	Publish(key any, payload any) error

	// Unsubscribe removes the listener's registration from the given key.
	Unsubscribe(key any, fn Listener) error

	// HasListener reports whether the listener has a recorded registration.
	HasListener(key any, fn Listener) (bool, error)

	// ListenerCount returns the number of registrations for the given key.
	ListenerCount(key any) int

	// EventNames returns the keys that currently have registrations.
	EventNames() []any

	// Len returns the number of keys with registrations.
	Len() int

	// RemoveAllListeners drops every registration for the given key.
	RemoveAllListeners(key any) bool

	// Close removes all listeners to prevent memory leaks.
	Close()
}

var (
	_ Emitter = (*EventEmitter)(nil)
	_ Emitter = NoopEmitter{}
)

// NoopEmitter discards everything. It stands in wherever event observation is
// disabled but an Emitter is still required.
type NoopEmitter struct{}

func (NoopEmitter) Subscribe(any, Listener) (*Subscription, error) { return &Subscription{}, nil }

func (NoopEmitter) Publish(any, any) error { return nil }

func (NoopEmitter) Unsubscribe(any, Listener) error { return nil }

func (NoopEmitter) HasListener(any, Listener) (bool, error) { return false, nil }

func (NoopEmitter) ListenerCount(any) int { return 0 }

func (NoopEmitter) EventNames() []any { return nil }

func (NoopEmitter) Len() int { return 0 }

func (NoopEmitter) RemoveAllListeners(any) bool { return false }

func (NoopEmitter) Close() {}
