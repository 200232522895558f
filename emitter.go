package libemit

import (
	"sync"

	"github.com/pkg/errors"
)

// Listener is a callback invoked with the published payload. The return value
// is never surfaced to publishers; it only feeds the diagnostic sink.
type Listener func(payload any) any

// wrappedListener decorates a caller listener with diagnostic logging without
// changing dispatch semantics. One wrapper exists per registration.
type wrappedListener struct {
	key any
	fn  Listener
}

func (w *wrappedListener) invoke(sink DiagnosticSink, payload any) {
	result := w.fn(payload)
	sink.Log(DiagnosticEntry{Op: OpInvoke, Key: w.key, Payload: result})
}

// EventEmitter is a synchronous publish/subscribe emitter. It maps event keys
// to ordered registration sets and keeps an auxiliary identity map from the
// caller's listener func to its wrapper, so registrations can be removed by
// the original func reference without the caller keeping the wrapper around.
type EventEmitter struct {
	lock      sync.RWMutex
	listeners map[any][]*wrappedListener
	wrapped   map[uintptr]*wrappedListener
	sink      DiagnosticSink
}

// NewEventEmitter creates a new EventEmitter and returns a pointer to it.
// Diagnostics are enabled by default and go to a ConsoleSink on stderr.
func NewEventEmitter(opts ...Option) *EventEmitter {
	options := Options{Debug: true}
	for _, opt := range opts {
		opt(&options)
	}

	sink := options.Sink
	if sink == nil {
		sink = NewConsoleSink(options.Writer)
	}
	if !options.Debug {
		sink = noopSink{}
	}

	return &EventEmitter{
		listeners: make(map[any][]*wrappedListener),
		wrapped:   make(map[uintptr]*wrappedListener),
		sink:      sink,
	}
}

// Subscribe registers fn under key and returns a token that can remove the
// registration later. A listener func holds at most one auxiliary
// association: re-subscribing the same func, even under another key,
// overwrites it, leaving the earlier registration reachable only by Publish.
func (e *EventEmitter) Subscribe(key any, fn Listener) (*Subscription, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, errors.Wrap(ErrInvalidListenerType, "subscribe")
	}

	wrapper := &wrappedListener{key: key, fn: fn}

	e.lock.Lock()
	e.listeners[key] = append(e.listeners[key], wrapper)
	e.wrapped[listenerID(fn)] = wrapper
	e.lock.Unlock()

	e.sink.Log(DiagnosticEntry{Op: OpSubscribe, Key: key})

	return &Subscription{emitter: e, key: key, fn: fn}, nil
}

// Publish triggers all listeners registered for key synchronously, in
// registration order, passing payload to each. The registration set is
// snapshotted before any listener runs, so listeners that subscribe or
// unsubscribe mid-dispatch never affect the in-flight pass. Publishing to a
// key with no listeners is not an error.
func (e *EventEmitter) Publish(key any, payload any) error {
	if err := validateKey(key); err != nil {
		return err
	}

	e.sink.Log(DiagnosticEntry{Op: OpEmit, Key: key, Payload: payload})

	e.lock.RLock()
	registered := e.listeners[key]
	snapshot := make([]*wrappedListener, len(registered))
	copy(snapshot, registered)
	e.lock.RUnlock()

	for _, wrapper := range snapshot {
		wrapper.invoke(e.sink, payload)
	}

	return nil
}

// Unsubscribe removes the registration recorded for fn from key's set. It
// fails with ErrUnknownKey when the key has no registrations and with
// ErrUnknownListener when fn has no recorded association. A key whose set
// empties is pruned entirely.
func (e *EventEmitter) Unsubscribe(key any, fn Listener) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if fn == nil {
		return errors.Wrap(ErrInvalidListenerType, "unsubscribe")
	}

	e.lock.Lock()
	// The association check runs first: once a registration is removed and
	// its key pruned, a repeated removal reports the listener as unknown
	// rather than the key.
	id := listenerID(fn)
	wrapper, ok := e.wrapped[id]
	if !ok {
		e.lock.Unlock()
		return errors.Wrapf(ErrUnknownListener, "key %v", key)
	}

	registered, ok := e.listeners[key]
	if !ok {
		e.lock.Unlock()
		return errors.Wrapf(ErrUnknownKey, "key %v", key)
	}

	e.listeners[key] = removeWrapper(registered, wrapper)
	if len(e.listeners[key]) == 0 {
		delete(e.listeners, key)
	}
	delete(e.wrapped, id)
	e.lock.Unlock()

	e.sink.Log(DiagnosticEntry{Op: OpUnsubscribe, Key: key})

	return nil
}

// HasListener reports whether fn currently has a recorded registration. The
// key argument is validated but does not narrow the answer: the auxiliary map
// is keyed by listener identity alone, so a func registered under any key
// answers true. Pure lookup, no mutation, no diagnostic entry.
func (e *EventEmitter) HasListener(key any, fn Listener) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	if fn == nil {
		return false, errors.Wrap(ErrInvalidListenerType, "hasListener")
	}

	e.lock.RLock()
	_, ok := e.wrapped[listenerID(fn)]
	e.lock.RUnlock()

	return ok, nil
}

// ListenerCount returns the number of registrations for key.
func (e *EventEmitter) ListenerCount(key any) int {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return len(e.listeners[key])
}

// EventNames returns the keys that currently have registrations.
func (e *EventEmitter) EventNames() []any {
	e.lock.RLock()
	defer e.lock.RUnlock()

	names := make([]any, 0, len(e.listeners))
	for key := range e.listeners {
		names = append(names, key)
	}
	return names
}

// Len returns the number of keys with registrations.
func (e *EventEmitter) Len() int {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return len(e.listeners)
}

// RemoveAllListeners drops every registration for key, together with the
// auxiliary associations that still point into its set. It reports whether
// anything was removed.
func (e *EventEmitter) RemoveAllListeners(key any) bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	registered, ok := e.listeners[key]
	if !ok {
		return false
	}

	for _, wrapper := range registered {
		id := listenerID(wrapper.fn)
		if e.wrapped[id] == wrapper {
			delete(e.wrapped, id)
		}
	}
	delete(e.listeners, key)

	return true
}

// Close removes all listeners and associations to prevent memory leaks.
func (e *EventEmitter) Close() {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.listeners = make(map[any][]*wrappedListener)
	e.wrapped = make(map[uintptr]*wrappedListener)
}

func removeWrapper(listeners []*wrappedListener, target *wrappedListener) []*wrappedListener {
	for i := range listeners {
		if listeners[i] == target {
			copy(listeners[i:], listeners[i+1:])
			listeners[len(listeners)-1] = nil
			return listeners[:len(listeners)-1]
		}
	}
	return listeners
}
